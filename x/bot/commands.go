package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	maxNameLength      = 50
	maxFaceclaimLength = 100
	maxBioLength       = 300
	maxImageLength     = 2048
	minPasswordLength  = 8

	autocompleteLimit = 10
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "create_character",
		Description: "Creates a new character profile",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: fmt.Sprintf("Character name (max %d chars)", maxNameLength),
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "faceclaim",
				Description: "Character's face claim (actor/model name)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "image",
				Description: "Character image URL (HTTPS, jpg/png only)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "bio",
				Description: fmt.Sprintf("Character sheet link (max %d chars)", maxBioLength),
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "password",
				Description: fmt.Sprintf("Password for future edits (min %d chars)", minPasswordLength),
				Required:    true,
			},
		},
	},
	{
		Name:        "edit_character",
		Description: "Edits an existing character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "The name of the character to edit",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "password",
				Description: "The password to edit the character",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "faceclaim",
				Description: "New face claim (optional)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "image",
				Description: "New image URL (HTTPS, jpg/png only)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "bio",
				Description: fmt.Sprintf("New sheet link (max %d chars)", maxBioLength),
				Required:    false,
			},
		},
	},
	{
		Name:        "delete_character",
		Description: "Deletes a character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "The name of the character to delete",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "password",
				Description: "The password to delete the character",
				Required:    true,
			},
		},
	},
	{
		Name:        "show_character",
		Description: "Shows a character's profile",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "The name of the character to show",
				Required:     true,
				Autocomplete: true,
			},
		},
	},
	{
		Name:        "list_all_characters",
		Description: "Shows the list of all characters",
	},
}
