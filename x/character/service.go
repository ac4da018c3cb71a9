//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package character

import (
	"context"
	"strings"
	"time"

	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shielddb/shield/core"
)

// hashCost matches the work factor the original deployment used.
const hashCost = 10

// Service is the interface for character service
type Service interface {
	Create(ctx context.Context, request CreateRequest) (core.Character, error)
	Get(ctx context.Context, name string) (core.Character, error)
	Update(ctx context.Context, request UpdateRequest) (core.Character, error)
	Delete(ctx context.Context, name string, password string) (core.Character, error)
	List(ctx context.Context) ([]core.Character, error)
	Search(ctx context.Context, term string) ([]core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	override core.OverrideCredential
}

// NewService creates a new character service
func NewService(repo Repository, config core.Config) Service {
	return &service{repo, core.OverrideCredential(config.AdminPassword)}
}

// authorize accepts either the record's own password or the override
// credential. The override path never falls through to bcrypt, so the two
// are testable in isolation.
func authorize(stored string, password string, override core.OverrideCredential) bool {
	if override != "" && password == string(override) {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// Create hashes the password, lowercases the name and inserts the record
func (s *service) Create(ctx context.Context, request CreateRequest) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), hashCost)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	created, err := s.repo.Create(ctx, core.Character{
		ID:        xid.New().String(),
		Name:      strings.ToLower(request.Name),
		Faceclaim: request.Faceclaim,
		Image:     request.Image,
		Bio:       request.Bio,
		Password:  string(hash),
	})
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	created.Password = ""
	return created, nil
}

// Get returns a character by name, case-insensitively
func (s *service) Get(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Get")
	defer span.End()

	character, err := s.repo.GetByName(ctx, strings.ToLower(name))
	if err != nil {
		return core.Character{}, err
	}

	character.Password = ""
	return character, nil
}

// Update applies the supplied fields after verifying the password or the
// override credential. The updated timestamp is refreshed even when no
// field changed.
func (s *service) Update(ctx context.Context, request UpdateRequest) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Update")
	defer span.End()

	name := strings.ToLower(request.Name)

	current, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return core.Character{}, err
	}

	if !authorize(current.Password, request.Password, s.override) {
		return core.Character{}, core.NewErrorPermissionDenied()
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if request.Faceclaim != nil {
		updates["faceclaim"] = *request.Faceclaim
	}
	if request.Image != nil {
		updates["image"] = *request.Image
	}
	if request.Bio != nil {
		updates["bio"] = *request.Bio
	}

	updated, err := s.repo.Update(ctx, name, updates)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	updated.Password = ""
	return updated, nil
}

// Delete removes a character after verifying the password or the override
// credential
func (s *service) Delete(ctx context.Context, name string, password string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	name = strings.ToLower(name)

	current, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return core.Character{}, err
	}

	if !authorize(current.Password, password, s.override) {
		return core.Character{}, core.NewErrorPermissionDenied()
	}

	deleted, err := s.repo.Delete(ctx, name)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	deleted.Password = ""
	return deleted, nil
}

// List returns every character ordered by name
func (s *service) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.List")
	defer span.End()

	characters, err := s.repo.GetList(ctx)
	if err != nil {
		return []core.Character{}, err
	}

	for i := range characters {
		characters[i].Password = ""
	}
	return characters, nil
}

// Search returns up to 25 characters whose name contains term
func (s *service) Search(ctx context.Context, term string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Search")
	defer span.End()

	characters, err := s.repo.Search(ctx, strings.ToLower(term), 25)
	if err != nil {
		return []core.Character{}, err
	}

	for i := range characters {
		characters[i].Password = ""
	}
	return characters, nil
}

// Count returns the total number of characters
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
