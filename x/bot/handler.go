// Package bot is the slash command surface: option parsing, validation,
// store calls, replies, and the broadcast side effect on every mutation.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel"

	"github.com/shielddb/shield/core"
	"github.com/shielddb/shield/x/character"
	"github.com/shielddb/shield/x/socket"
)

var tracer = otel.Tracer("bot")

// commandTimeout stays inside the platform's reply deadline so a stalled
// store surfaces as a failure instead of a hang.
const commandTimeout = 3 * time.Second

const (
	embedColor = 0xfffdd0

	invalidImageMessage = "❌ Invalid image URL. Please provide an HTTPS URL ending with .jpg, .jpeg, or .png."
	genericErrorMessage = "❌ An error occurred while processing your request. Please try again later."
)

// Handler validates and dispatches slash command interactions
type Handler struct {
	service   character.Service
	publisher socket.Publisher
	config    core.Config
}

// NewHandler creates a new handler
func NewHandler(service character.Service, publisher socket.Publisher, config core.Config) *Handler {
	return &Handler{service, publisher, config}
}

// Register overwrites the application's command set. A failure here is
// fatal to startup.
func (h *Handler) Register(session *discordgo.Session) error {
	_, err := session.ApplicationCommandBulkOverwrite(h.config.AppID, h.config.GuildID, commands)
	return err
}

// Hook attaches the dispatcher to a gateway session
func (h *Handler) Hook(session *discordgo.Session) {
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		response := h.Dispatch(i)
		if response == nil {
			return
		}
		if err := s.InteractionRespond(i.Interaction, response); err != nil {
			slog.Error(
				fmt.Sprintf("failed to respond to interaction: %v", err),
				slog.String("module", "bot"),
			)
		}
	})
}

// Dispatch routes one interaction and returns the reply to send, or nil
// when the interaction is not ours to answer.
func (h *Handler) Dispatch(i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "Bot.Handler.Dispatch")
	defer span.End()

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		return h.handleAutocomplete(ctx, i.ApplicationCommandData())
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case "create_character":
			return h.handleCreate(ctx, data)
		case "edit_character":
			return h.handleEdit(ctx, data)
		case "delete_character":
			return h.handleDelete(ctx, data)
		case "show_character":
			return h.handleShow(ctx, data)
		case "list_all_characters":
			return h.handleList(ctx)
		}
	}
	return nil
}

func (h *Handler) handleCreate(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.Create")
	defer span.End()

	args := parseCreateArgs(data)

	if problems := validateCreate(args); len(problems) > 0 {
		return ephemeralReply("❌ Validation failed:\n" + strings.Join(problems, "\n"))
	}

	if _, err := h.service.Get(ctx, args.Name); err == nil {
		return ephemeralReply(fmt.Sprintf("❌ A character named %q already exists!", args.Name))
	}

	if !isValidImageURL(args.Image) {
		return ephemeralReply(invalidImageMessage)
	}

	created, err := h.service.Create(ctx, character.CreateRequest{
		Name:      args.Name,
		Faceclaim: args.Faceclaim,
		Image:     args.Image,
		Bio:       args.Bio,
		Password:  args.Password,
	})
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return ephemeralReply(fmt.Sprintf("❌ A character named %q already exists!", args.Name))
		}
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to create character: %v", err),
			slog.String("module", "bot"),
		)
		return ephemeralReply(genericErrorMessage)
	}

	h.broadcast(ctx, socket.Event{
		Action:    "create",
		Name:      created.Name,
		Faceclaim: created.Faceclaim,
		Image:     created.Image,
		Bio:       created.Bio,
	})

	return reply(fmt.Sprintf("✓ Character %q has been created successfully!", args.Name))
}

func (h *Handler) handleEdit(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.Edit")
	defer span.End()

	args := parseEditArgs(data)

	if args.Faceclaim != nil && len(*args.Faceclaim) > maxFaceclaimLength {
		return ephemeralReply(fmt.Sprintf("❌ Face claim must not exceed %d characters", maxFaceclaimLength))
	}
	if args.Bio != nil && len(*args.Bio) > maxBioLength {
		return ephemeralReply(fmt.Sprintf("❌ Bio must not exceed %d characters", maxBioLength))
	}
	if args.Image != nil && !isValidImageURL(*args.Image) {
		return ephemeralReply(invalidImageMessage)
	}

	updated, err := h.service.Update(ctx, character.UpdateRequest{
		Name:      args.Name,
		Password:  args.Password,
		Faceclaim: args.Faceclaim,
		Image:     args.Image,
		Bio:       args.Bio,
	})
	if err != nil {
		if isAuthFailure(err) {
			return ephemeralReply(fmt.Sprintf("❌ Unable to update %q. Please check the password and try again.", args.Name))
		}
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to update character: %v", err),
			slog.String("module", "bot"),
		)
		return ephemeralReply(genericErrorMessage)
	}

	h.broadcast(ctx, socket.Event{Action: "edit", Name: updated.Name})

	return reply(fmt.Sprintf("✓ Character %q has been updated!", args.Name))
}

func (h *Handler) handleDelete(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.Delete")
	defer span.End()

	args := parseDeleteArgs(data)

	deleted, err := h.service.Delete(ctx, args.Name, args.Password)
	if err != nil {
		if isAuthFailure(err) {
			return ephemeralReply(fmt.Sprintf("❌ Unable to delete %q. Please check the password and try again.", args.Name))
		}
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to delete character: %v", err),
			slog.String("module", "bot"),
		)
		return ephemeralReply(genericErrorMessage)
	}

	h.broadcast(ctx, socket.Event{Action: "delete", Name: deleted.Name})

	return reply(fmt.Sprintf("✓ Character %q has been deleted.", args.Name))
}

func (h *Handler) handleShow(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.Show")
	defer span.End()

	name := strings.TrimSpace(stringOptions(data)["name"])

	found, err := h.service.Get(ctx, name)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return ephemeralReply(fmt.Sprintf("❌ Character %q not found.", name))
		}
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to fetch character: %v", err),
			slog.String("module", "bot"),
		)
		return ephemeralReply(genericErrorMessage)
	}

	description := found.Bio
	if strings.HasPrefix(found.Bio, "http") {
		description = fmt.Sprintf("[Character Sheet](%s)", found.Bio)
	}

	embed := &discordgo.MessageEmbed{
		Title:       strings.ToUpper(found.Name),
		Description: description,
		Color:       embedColor,
		Image:       &discordgo.MessageEmbedImage{URL: found.Image},
		Footer:      &discordgo.MessageEmbedFooter{Text: found.Faceclaim},
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

func (h *Handler) handleList(ctx context.Context) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.List")
	defer span.End()

	characters, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to list characters: %v", err),
			slog.String("module", "bot"),
		)
		return ephemeralReply(genericErrorMessage)
	}

	if len(characters) == 0 {
		return ephemeralReply("No characters found in the database.")
	}

	return reply(fmt.Sprintf("📚 View the complete character list [here](%s)", h.config.ListURL))
}

func (h *Handler) handleAutocomplete(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	ctx, span := tracer.Start(ctx, "Bot.Handler.Autocomplete")
	defer span.End()

	switch data.Name {
	case "edit_character", "delete_character", "show_character":
	default:
		return nil
	}

	focused := ""
	for _, option := range data.Options {
		if option.Focused {
			focused = option.StringValue()
			break
		}
	}

	characters, err := h.service.Search(ctx, focused)
	if err != nil {
		// degrade to an empty choice list, never an error
		span.RecordError(err)
		slog.ErrorContext(
			ctx, fmt.Sprintf("autocomplete search failed: %v", err),
			slog.String("module", "bot"),
		)
		characters = nil
	}

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, found := range characters {
		if len(choices) >= autocompleteLimit {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  found.Name,
			Value: found.Name,
		})
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}
}

// broadcast is fire-and-forget; a lost event never fails the command.
func (h *Handler) broadcast(ctx context.Context, event socket.Event) {
	if err := h.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(
			ctx, fmt.Sprintf("failed to publish %s event: %v", event.Action, err),
			slog.String("module", "bot"),
		)
	}
}

// isAuthFailure collapses not-found and wrong-password: the invoker never
// learns whether the name exists.
func isAuthFailure(err error) bool {
	return errors.Is(err, core.ErrorNotFound{}) || errors.Is(err, core.ErrorPermissionDenied{})
}

func reply(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

func ephemeralReply(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
