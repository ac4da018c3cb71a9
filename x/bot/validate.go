package bot

import (
	"fmt"
	"regexp"
)

var imageURLPattern = regexp.MustCompile(`(?i)^https://.*\.(jpg|jpeg|png)$`)

func isValidImageURL(url string) bool {
	if url == "" {
		return false
	}
	return len(url) <= maxImageLength && imageURLPattern.MatchString(url)
}

// validateCreate collects every problem instead of stopping at the first,
// so the invoker can fix the whole command in one pass.
func validateCreate(args createArgs) []string {
	var problems []string

	if args.Name == "" || len(args.Name) > maxNameLength {
		problems = append(problems, fmt.Sprintf("Name must be between 1 and %d characters", maxNameLength))
	}

	if args.Faceclaim == "" || len(args.Faceclaim) > maxFaceclaimLength {
		problems = append(problems, fmt.Sprintf("Face claim must be between 1 and %d characters", maxFaceclaimLength))
	}

	if args.Bio != "" && len(args.Bio) > maxBioLength {
		problems = append(problems, fmt.Sprintf("Bio must not exceed %d characters", maxBioLength))
	}

	if args.Password != "" && len(args.Password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	return problems
}
