package discord

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/handler"
	"github.com/osse101/WhineTime/internal/session"
)

// withGame defers the response, resolves the caller's session and runs fn.
// Games that are gone or finished are forgotten so /newgame starts fresh.
func withGame(s *discordgo.Session, i *discordgo.InteractionCreate, players *PlayerSessions,
	fn func(ctx context.Context, sessionID string) error) {
	if !deferResponse(s, i) {
		return
	}

	user := getInteractionUser(i)
	sessionID, ok := players.Get(user.ID)
	if !ok {
		respondError(s, i, MsgNoGame)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := fn(ctx, sessionID); err != nil {
		if sessionGone(err) {
			players.Remove(user.ID)
		}
		respondFriendlyError(s, i, err)
	}
}

// sendActionResult renders an action and forgets the game once it is over
func sendActionResult(s *discordgo.Session, i *discordgo.InteractionCreate, players *PlayerSessions, title string, res *session.ActionResult) {
	desc := res.Message
	if desc == "" {
		desc = fmt.Sprintf("✅ %s", humanize(res.Action))
	}
	embed := snapshotEmbed(title, desc, &res.Snapshot)
	if res.Snapshot.Status != game.StatusPlaying {
		players.Remove(getInteractionUser(i).ID)
	}
	sendEmbed(s, i, embed)
}

// snapshotEmbed colors the embed by game state
func snapshotEmbed(title, desc string, snap *game.Snapshot) *discordgo.MessageEmbed {
	color := ColorInfo
	switch {
	case snap.Status == game.StatusWon:
		color = ColorGold
		desc += "\n\n🎉 **You won!** " + string(snap.Reason)
	case snap.Status == game.StatusLost:
		color = ColorDanger
		desc += "\n\n💔 **Game over.** " + string(snap.Reason)
	case len(snap.Critical) > 0:
		color = ColorWarning
	}
	embed := createEmbed(title, desc, color)
	embed.Fields = formatStatus(snap)
	return embed
}

func profileChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Easy", Value: "easy"},
		{Name: "Normal", Value: "normal"},
		{Name: "Hard", Value: "hard"},
	}
}

// NewGameCommand starts a game for the caller, replacing any game they had
func NewGameCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdNewGame,
		Description: "Start a new game of Whine Time",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptName,
				Description: "Name shown on the leaderboard (default: your username)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptProfile,
				Description: "Difficulty",
				Choices:     profileChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		opts := optionMap(i)
		name := stringOption(opts, OptName, user.Username)
		profile := stringOption(opts, OptProfile, "")

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		sum, err := client.CreateSession(ctx, name, profile)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		players.Set(user.ID, sum.SessionID)

		desc := fmt.Sprintf("👶 Welcome home, **%s**! Difficulty: **%s**.\nKeep the baby fed, clean and happy.", name, title(sum.Profile))
		sendEmbed(s, i, snapshotEmbed("New Game", desc, &sum.Snapshot))
	}

	return cmd, handler
}

// StatusCommand shows the caller's household
func StatusCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdStatus,
		Description: "Show how your household is doing",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			snap, err := client.GetSession(ctx, sessionID)
			if err != nil {
				return err
			}
			if snap.Status != game.StatusPlaying {
				players.Remove(getInteractionUser(i).ID)
			}
			sendEmbed(s, i, snapshotEmbed("Household Status", "", snap))
			return nil
		})
	}

	return cmd, handler
}

// careActions need a baby target. The rest act on the player or household.
var careActions = map[string]bool{
	session.ActionFeed:             true,
	session.ActionChangeDiaper:     true,
	session.ActionComfort:          true,
	session.ActionEat:              false,
	session.ActionSleep:            false,
	session.ActionWashBottles:      false,
	session.ActionSterilizeBottles: false,
	session.ActionPumpBreastMilk:   false,
}

// CareCommand runs one hands-on care action
func CareCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCare,
		Description: "Look after the baby or yourself",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptAction,
				Description: "What to do",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Feed", Value: session.ActionFeed},
					{Name: "Change diaper", Value: session.ActionChangeDiaper},
					{Name: "Comfort", Value: session.ActionComfort},
					{Name: "Eat", Value: session.ActionEat},
					{Name: "Sleep", Value: session.ActionSleep},
					{Name: "Wash bottles", Value: session.ActionWashBottles},
					{Name: "Sterilize bottles", Value: session.ActionSterilizeBottles},
					{Name: "Pump breast milk", Value: session.ActionPumpBreastMilk},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptBaby,
				Description: "Baby name or id (default: your first baby)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptFormula,
				Description: "What to feed",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Formula", Value: string(domain.FormulaRegular)},
					{Name: "Sensitive formula", Value: string(domain.FormulaSensitive)},
					{Name: "Breast milk", Value: string(domain.FormulaBreastMilk)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        OptHours,
				Description: fmt.Sprintf("Hours to sleep (default: %d)", DefaultSleepHours),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := optionMap(i)
		actionName := stringOption(opts, OptAction, "")

		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			action, err := buildCareAction(ctx, client, sessionID, actionName, opts)
			if err != nil {
				return err
			}
			res, err := client.Act(ctx, sessionID, action)
			if err != nil {
				return err
			}
			sendActionResult(s, i, players, humanize(actionName), res)
			return nil
		})
	}

	return cmd, handler
}

func buildCareAction(ctx context.Context, client *APIClient, sessionID, name string,
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (session.Action, error) {
	action := session.Action{Name: name}
	needsBaby, known := careActions[name]
	if !known {
		return action, &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("unknown care action %q", name)}
	}

	switch name {
	case session.ActionFeed:
		action.Formula = domain.FormulaType(stringOption(opts, OptFormula, string(domain.FormulaRegular)))
	case session.ActionSleep:
		action.Hours = floatOption(opts, OptHours, DefaultSleepHours)
	}

	if needsBaby {
		snap, err := client.GetSession(ctx, sessionID)
		if err != nil {
			return action, err
		}
		id, ok := pickBaby(snap, stringOption(opts, OptBaby, ""))
		if !ok {
			return action, &APIError{Status: http.StatusNotFound, Message: handler.ErrMsgActorNotFound}
		}
		action.TargetID = id
	}
	return action, nil
}

// pickBaby matches want against baby ids and names. An empty want picks the
// first baby.
func pickBaby(snap *game.Snapshot, want string) (string, bool) {
	for _, a := range snap.Actors {
		if a.Kind != domain.ActorBaby {
			continue
		}
		if want == "" || a.ID == want || strings.EqualFold(a.Name, want) {
			return a.ID, true
		}
	}
	return "", false
}

// ShopCommand buys supplies
func ShopCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdShop,
		Description: "Buy supplies",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptItem,
				Description: "What to buy",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Diapers", Value: string(domain.ResourceDiapers)},
					{Name: "Formula", Value: string(domain.ResourceFormula)},
					{Name: "Sensitive formula", Value: string(domain.ResourceSensitiveFormula)},
					{Name: "Bottles", Value: string(domain.ResourceBottles)},
					{Name: "Food", Value: string(domain.ResourceFood)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptQuantity,
				Description: "Quantity (default: 1)",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := optionMap(i)
		item := domain.Resource(stringOption(opts, OptItem, ""))
		quantity := intOption(opts, OptQuantity, 1)

		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			res, err := client.Act(ctx, sessionID, session.Action{
				Name:     session.ActionBuyItem,
				Item:     item,
				Quantity: quantity,
			})
			if err != nil {
				return err
			}
			if res.Message == "" {
				res.Message = sprintf("🛒 Bought %d × %s", quantity, humanize(string(item)))
			}
			sendActionResult(s, i, players, "Shop", res)
			return nil
		})
	}

	return cmd, handler
}

// LoanCommand borrows or repays money
func LoanCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLoan,
		Description: "Borrow money or pay back your debt",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptAction,
				Description: "Take or repay",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Take", Value: LoanTake},
					{Name: "Repay", Value: LoanRepay},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        OptAmount,
				Description: "Amount of money",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := optionMap(i)
		amount := floatOption(opts, OptAmount, 0)
		name := session.ActionTakeLoan
		verb := "🏦 Borrowed"
		if stringOption(opts, OptAction, LoanTake) == LoanRepay {
			name = session.ActionRepayLoan
			verb = "💸 Repaid"
		}

		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			res, err := client.Act(ctx, sessionID, session.Action{Name: name, Amount: amount})
			if err != nil {
				return err
			}
			if res.Message == "" {
				res.Message = fmt.Sprintf("%s %s", verb, formatMoney(res.Amount))
			}
			sendActionResult(s, i, players, "Loan", res)
			return nil
		})
	}

	return cmd, handler
}

// WorkCommand sends the player to work
func WorkCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdWork,
		Description: "Go to work and earn money while the household carries on",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			res, err := client.Act(ctx, sessionID, session.Action{Name: session.ActionWork})
			if err != nil {
				return err
			}
			if res.Work != nil && res.Message == "" {
				res.Message = fmt.Sprintf("💼 Earned %s over %.1f hours", formatMoney(res.Work.Earnings), res.Work.HoursAway)
			}
			sendActionResult(s, i, players, "Work", res)
			return nil
		})
	}

	return cmd, handler
}

// EndGameCommand abandons the caller's game and shows its result
func EndGameCommand(players *PlayerSessions) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdEndGame,
		Description: "End your current game",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		withGame(s, i, players, func(ctx context.Context, sessionID string) error {
			o, err := client.EndSession(ctx, sessionID)
			if err != nil {
				return err
			}
			players.Remove(getInteractionUser(i).ID)
			sendEmbed(s, i, createEmbed("Game Ended", formatOutcome(o), ColorTeal))
			return nil
		})
	}

	return cmd, handler
}

// LeaderboardCommand shows the best finished games
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLeaderboard,
		Description: "Show the best finished games",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptLimit,
				Description: fmt.Sprintf("Number of entries (default: %d)", DefaultLeaderboardLimit),
				MinValue:    &minLimit,
				MaxValue:    MaxLeaderboardLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		limit := intOption(optionMap(i), OptLimit, DefaultLeaderboardLimit)
		limit = max(1, min(MaxLeaderboardLimit, limit))

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		entries, err := client.Leaderboard(ctx, limit)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, createEmbed("🏆 Leaderboard", formatLeaderboard(entries), ColorGold))
	}

	return cmd, handler
}
