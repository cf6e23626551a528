package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/douglarek/feedreader/app"
)

var (
	defaultMemberPermissions int64 = discordgo.PermissionAdministrator // defaullt to admin only
	nameOption                     = &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "the name of the feed source",
		Required:    true,
	}
	discordCommands = []*discordgo.ApplicationCommand{
		{
			Name:                     "reader",
			Description:              "A feed reader",
			DefaultMemberPermissions: &defaultMemberPermissions,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "list feed sources",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "add a feed source",
					Options: []*discordgo.ApplicationCommandOption{
						nameOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "url",
							Description: "the url of the feed",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "remove a feed source",
					Options:     []*discordgo.ApplicationCommandOption{nameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "load",
					Description: "load the items of a feed source",
					Options: []*discordgo.ApplicationCommandOption{
						nameOption,
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "hide_read",
							Description: "hide items already viewed",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "view an item of the last loaded feed and mark it read",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "index",
							Description: "the item number shown by load",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "forget which items were viewed",
				},
			},
		},
	}
	discordRegisteredCommands = make([]*discordgo.ApplicationCommand, len(discordCommands))
)

const loadTimeout = 30 * time.Second

type Discord struct {
	session *discordgo.Session
}

func (d *Discord) Close() error {
	return d.session.Close()
}

func NewDiscordBot(token string, a *app.App) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	r := newReader(a.Registry, a.Session)
	session.AddHandler(discordReady)
	session.AddHandler(discordCommandsHandler(r))
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	err = session.Open()
	if err != nil {
		return nil, err
	}

	// create commands
	for i, v := range discordCommands {
		cmd, err := session.ApplicationCommandCreate(session.State.User.ID, "", v)
		if err != nil {
			return nil, err
		}
		discordRegisteredCommands[i] = cmd
	}

	return &Discord{session: session}, nil
}

func discordReady(_ *discordgo.Session, r *discordgo.Ready) {
	slog.Info("[bot.botReady]: bot is ready", "user", r.User.Username+"#"+r.User.Discriminator)
}

func discordCommandsHandler(r *reader) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand || i.ApplicationCommandData().Name != "reader" {
			return
		}
		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			return
		}
		sub := options[0]
		opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
		for _, o := range sub.Options {
			opts[o.Name] = o
		}
		str := func(name string) string {
			if o, ok := opts[name]; ok {
				return o.StringValue()
			}
			return ""
		}

		if sub.Name == "load" {
			// fetching may outlast the interaction deadline
			if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
			}); err != nil {
				slog.Error("[bot.discordCommandsHandler]: cannot defer response", "error", err)
				return
			}
			hideRead := false
			if o, ok := opts["hide_read"]; ok {
				hideRead = o.BoolValue()
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
				defer cancel()
				content := r.load(ctx, i.ChannelID, str("name"), hideRead)
				if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
					slog.Error("[bot.discordCommandsHandler]: cannot edit response", "error", err)
				}
			}()
			return
		}

		ctx := context.TODO()
		var content string
		switch sub.Name {
		case "list":
			content = r.list(ctx)
		case "add":
			content = r.add(ctx, str("name"), str("url"))
		case "remove":
			content = r.remove(ctx, str("name"))
		case "view":
			var index int64
			if o, ok := opts["index"]; ok {
				index = o.IntValue()
			}
			content = r.view(i.ChannelID, int(index))
		case "reset":
			content = r.reset(i.ChannelID)
		default:
			content = fmt.Sprintf(":robot: unknown command %q", sub.Name)
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags:   discordgo.MessageFlagsEphemeral,
				Content: content,
			},
		}); err != nil {
			slog.Error("[bot.discordCommandsHandler]: cannot respond", "command", sub.Name, "error", err)
		}
	}
}
