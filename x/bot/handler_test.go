package bot

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shielddb/shield/core"
	"github.com/shielddb/shield/x/character"
	"github.com/shielddb/shield/x/character/mock"
	"github.com/shielddb/shield/x/socket"
	"github.com/shielddb/shield/x/socket/mock"
)

func newTestHandler(t *testing.T) (*Handler, *mock_character.MockService, *mock_socket.MockPublisher) {
	ctrl := gomock.NewController(t)

	mockService := mock_character.NewMockService(ctrl)
	mockPublisher := mock_socket.NewMockPublisher(ctrl)

	h := NewHandler(mockService, mockPublisher, core.Config{
		ListURL: "https://example.com/characters",
	})

	return h, mockService, mockPublisher
}

func stringOption(name string, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionString,
		Name:  name,
		Value: value,
	}
}

func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
		},
	}
}

func autocompleteInteraction(name string, focused string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommandAutocomplete,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Type:    discordgo.ApplicationCommandOptionString,
						Name:    "name",
						Value:   focused,
						Focused: true,
					},
				},
			},
		},
	}
}

func TestCreate(t *testing.T) {
	h, mockService, mockPublisher := newTestHandler(t)

	created := core.Character{
		Name:      "zoe washburne",
		Faceclaim: "Gina Torres",
		Image:     "https://cdn.example.com/zoe.png",
		Bio:       "https://docs.example.com/zoe",
	}

	mockService.EXPECT().
		Get(gomock.Any(), "Zoe Washburne").
		Return(core.Character{}, core.NewErrorNotFound())
	mockService.EXPECT().
		Create(gomock.Any(), character.CreateRequest{
			Name:      "Zoe Washburne",
			Faceclaim: "Gina Torres",
			Image:     "https://cdn.example.com/zoe.png",
			Bio:       "https://docs.example.com/zoe",
			Password:  "serenity-crew",
		}).
		Return(created, nil)
	mockPublisher.EXPECT().
		Publish(gomock.Any(), socket.Event{
			Action:    "create",
			Name:      "zoe washburne",
			Faceclaim: "Gina Torres",
			Image:     "https://cdn.example.com/zoe.png",
			Bio:       "https://docs.example.com/zoe",
		}).
		Return(nil).
		Times(1)

	response := h.Dispatch(commandInteraction(
		"create_character",
		stringOption("name", "Zoe Washburne"),
		stringOption("faceclaim", "Gina Torres"),
		stringOption("image", "https://cdn.example.com/zoe.png"),
		stringOption("bio", "https://docs.example.com/zoe"),
		stringOption("password", "serenity-crew"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `✓ Character "Zoe Washburne" has been created successfully!`, response.Data.Content)
		assert.Zero(t, response.Data.Flags)
	}
}

func TestCreateValidationFailure(t *testing.T) {
	// no store call and no broadcast on a validation failure
	h, _, _ := newTestHandler(t)

	response := h.Dispatch(commandInteraction(
		"create_character",
		stringOption("name", strings.Repeat("n", maxNameLength+1)),
		stringOption("faceclaim", "Gina Torres"),
		stringOption("image", "https://cdn.example.com/zoe.png"),
		stringOption("bio", ""),
		stringOption("password", "serenity-crew"),
	))

	if assert.NotNil(t, response) {
		assert.Contains(t, response.Data.Content, "Validation failed")
		assert.Contains(t, response.Data.Content, "Name must be between 1 and 50 characters")
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestCreateDuplicate(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Get(gomock.Any(), "Zoe").
		Return(core.Character{Name: "zoe"}, nil)

	response := h.Dispatch(commandInteraction(
		"create_character",
		stringOption("name", "Zoe"),
		stringOption("faceclaim", "Gina Torres"),
		stringOption("image", "https://cdn.example.com/zoe.png"),
		stringOption("bio", ""),
		stringOption("password", "serenity-crew"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `❌ A character named "Zoe" already exists!`, response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestCreateInvalidImage(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Get(gomock.Any(), "Zoe").
		Return(core.Character{}, core.NewErrorNotFound())

	response := h.Dispatch(commandInteraction(
		"create_character",
		stringOption("name", "Zoe"),
		stringOption("faceclaim", "Gina Torres"),
		stringOption("image", "http://cdn.example.com/zoe.png"),
		stringOption("bio", ""),
		stringOption("password", "serenity-crew"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, invalidImageMessage, response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestEdit(t *testing.T) {
	h, mockService, mockPublisher := newTestHandler(t)

	bio := "https://docs.example.com/zoe-v2"
	mockService.EXPECT().
		Update(gomock.Any(), character.UpdateRequest{
			Name:     "Zoe",
			Password: "serenity-crew",
			Bio:      &bio,
		}).
		Return(core.Character{Name: "zoe"}, nil)
	mockPublisher.EXPECT().
		Publish(gomock.Any(), socket.Event{Action: "edit", Name: "zoe"}).
		Return(nil).
		Times(1)

	response := h.Dispatch(commandInteraction(
		"edit_character",
		stringOption("name", "Zoe"),
		stringOption("password", "serenity-crew"),
		stringOption("bio", bio),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `✓ Character "Zoe" has been updated!`, response.Data.Content)
		assert.Zero(t, response.Data.Flags)
	}
}

func TestEditAuthFailuresAreIndistinguishable(t *testing.T) {
	// a wrong password and a missing record must read the same from the
	// outside, and neither may broadcast
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(core.Character{}, core.NewErrorNotFound())
	mockService.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(core.Character{}, core.NewErrorPermissionDenied())

	interaction := commandInteraction(
		"edit_character",
		stringOption("name", "Zoe"),
		stringOption("password", "wrong-password"),
	)

	notFound := h.Dispatch(interaction)
	wrongPassword := h.Dispatch(interaction)

	if assert.NotNil(t, notFound) && assert.NotNil(t, wrongPassword) {
		assert.Equal(t, notFound.Data.Content, wrongPassword.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, notFound.Data.Flags)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, wrongPassword.Data.Flags)
	}
}

func TestEditInvalidImage(t *testing.T) {
	h, _, _ := newTestHandler(t)

	response := h.Dispatch(commandInteraction(
		"edit_character",
		stringOption("name", "Zoe"),
		stringOption("password", "serenity-crew"),
		stringOption("image", "https://cdn.example.com/zoe.gif"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, invalidImageMessage, response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestDelete(t *testing.T) {
	h, mockService, mockPublisher := newTestHandler(t)

	mockService.EXPECT().
		Delete(gomock.Any(), "Zoe", "serenity-crew").
		Return(core.Character{Name: "zoe"}, nil)
	mockPublisher.EXPECT().
		Publish(gomock.Any(), socket.Event{Action: "delete", Name: "zoe"}).
		Return(nil).
		Times(1)

	response := h.Dispatch(commandInteraction(
		"delete_character",
		stringOption("name", "Zoe"),
		stringOption("password", "serenity-crew"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `✓ Character "Zoe" has been deleted.`, response.Data.Content)
		assert.Zero(t, response.Data.Flags)
	}
}

func TestDeleteAuthFailure(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Delete(gomock.Any(), "Zoe", "wrong-password").
		Return(core.Character{}, core.NewErrorPermissionDenied())

	response := h.Dispatch(commandInteraction(
		"delete_character",
		stringOption("name", "Zoe"),
		stringOption("password", "wrong-password"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `❌ Unable to delete "Zoe". Please check the password and try again.`, response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestShow(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Get(gomock.Any(), "zoe").
		Return(core.Character{
			Name:      "zoe",
			Faceclaim: "Gina Torres",
			Image:     "https://cdn.example.com/zoe.png",
			Bio:       "https://docs.example.com/zoe",
		}, nil)

	response := h.Dispatch(commandInteraction(
		"show_character",
		stringOption("name", "zoe"),
	))

	if assert.NotNil(t, response) && assert.Len(t, response.Data.Embeds, 1) {
		embed := response.Data.Embeds[0]
		assert.Equal(t, "ZOE", embed.Title)
		assert.Equal(t, "[Character Sheet](https://docs.example.com/zoe)", embed.Description)
		assert.Equal(t, embedColor, embed.Color)
		assert.Equal(t, "https://cdn.example.com/zoe.png", embed.Image.URL)
		assert.Equal(t, "Gina Torres", embed.Footer.Text)
	}
}

func TestShowPlainBio(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Get(gomock.Any(), "zoe").
		Return(core.Character{Name: "zoe", Bio: "Second in command."}, nil)

	response := h.Dispatch(commandInteraction(
		"show_character",
		stringOption("name", "zoe"),
	))

	if assert.NotNil(t, response) && assert.Len(t, response.Data.Embeds, 1) {
		assert.Equal(t, "Second in command.", response.Data.Embeds[0].Description)
	}
}

func TestShowNotFound(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Get(gomock.Any(), "nobody").
		Return(core.Character{}, core.NewErrorNotFound())

	response := h.Dispatch(commandInteraction(
		"show_character",
		stringOption("name", "nobody"),
	))

	if assert.NotNil(t, response) {
		assert.Equal(t, `❌ Character "nobody" not found.`, response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestList(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		List(gomock.Any()).
		Return([]core.Character{{Name: "zoe"}}, nil)

	response := h.Dispatch(commandInteraction("list_all_characters"))

	if assert.NotNil(t, response) {
		assert.Contains(t, response.Data.Content, "https://example.com/characters")
		assert.Zero(t, response.Data.Flags)
	}
}

func TestListEmpty(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		List(gomock.Any()).
		Return([]core.Character{}, nil)

	response := h.Dispatch(commandInteraction("list_all_characters"))

	if assert.NotNil(t, response) {
		assert.Equal(t, "No characters found in the database.", response.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	}
}

func TestAutocomplete(t *testing.T) {
	h, mockService, _ := newTestHandler(t)

	var matches []core.Character
	for i := 0; i < autocompleteLimit+5; i++ {
		matches = append(matches, core.Character{Name: "zoe"})
	}

	mockService.EXPECT().
		Search(gomock.Any(), "zo").
		Return(matches, nil)

	response := h.Dispatch(autocompleteInteraction("show_character", "zo"))

	if assert.NotNil(t, response) {
		assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, response.Type)
		assert.Len(t, response.Data.Choices, autocompleteLimit)
	}
}

func TestAutocompleteSearchFailure(t *testing.T) {
	// a broken search degrades to no suggestions
	h, mockService, _ := newTestHandler(t)

	mockService.EXPECT().
		Search(gomock.Any(), "zo").
		Return(nil, core.NewErrorNotFound())

	response := h.Dispatch(autocompleteInteraction("edit_character", "zo"))

	if assert.NotNil(t, response) {
		assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, response.Type)
		assert.Len(t, response.Data.Choices, 0)
	}
}

func TestAutocompleteUnknownCommand(t *testing.T) {
	h, _, _ := newTestHandler(t)

	response := h.Dispatch(autocompleteInteraction("create_character", "zo"))
	assert.Nil(t, response)
}
