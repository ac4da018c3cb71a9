package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Option values arrive loosely typed from the gateway; they are mapped to
// these argument structs once, at the boundary.

type createArgs struct {
	Name      string
	Faceclaim string
	Image     string
	Bio       string
	Password  string
}

type editArgs struct {
	Name      string
	Password  string
	Faceclaim *string
	Image     *string
	Bio       *string
}

type deleteArgs struct {
	Name     string
	Password string
}

func stringOptions(data discordgo.ApplicationCommandInteractionData) map[string]string {
	values := make(map[string]string)
	for _, option := range data.Options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			values[option.Name] = option.StringValue()
		}
	}
	return values
}

func parseCreateArgs(data discordgo.ApplicationCommandInteractionData) createArgs {
	values := stringOptions(data)
	return createArgs{
		Name:      strings.TrimSpace(values["name"]),
		Faceclaim: strings.TrimSpace(values["faceclaim"]),
		Image:     strings.TrimSpace(values["image"]),
		Bio:       strings.TrimSpace(values["bio"]),
		Password:  values["password"],
	}
}

func parseEditArgs(data discordgo.ApplicationCommandInteractionData) editArgs {
	values := stringOptions(data)
	args := editArgs{
		Name:     strings.TrimSpace(values["name"]),
		Password: values["password"],
	}
	if value, ok := values["faceclaim"]; ok {
		trimmed := strings.TrimSpace(value)
		args.Faceclaim = &trimmed
	}
	if value, ok := values["image"]; ok {
		trimmed := strings.TrimSpace(value)
		args.Image = &trimmed
	}
	if value, ok := values["bio"]; ok {
		trimmed := strings.TrimSpace(value)
		args.Bio = &trimmed
	}
	return args
}

func parseDeleteArgs(data discordgo.ApplicationCommandInteractionData) deleteArgs {
	values := stringOptions(data)
	return deleteArgs{
		Name:     strings.TrimSpace(values["name"]),
		Password: values["password"],
	}
}
