package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/metrics"
)

const merchantAPIURL = "https://api.korlark.com/merchants?limit=15&server=1"

var kst = time.FixedZone("KST", 9*60*60)

// merchantInterval is one wandering merchant spawn window in KST.
type merchantInterval struct {
	startHour, startMin int
	endHour, endMin     int
}

// Spawn windows; the first one wraps past midnight.
var merchantIntervals = []merchantInterval{
	{22, 0, 3, 30},
	{16, 0, 21, 30},
	{10, 0, 15, 30},
	{4, 0, 9, 30},
}

type merchantItem struct {
	Type    int    `json:"type"`
	Content string `json:"content"`
}

type merchant struct {
	Continent string         `json:"continent"`
	CreatedAt string         `json:"created_at"`
	Items     []merchantItem `json:"items"`
}

type merchantResponse struct {
	Merchants []merchant `json:"merchants"`
}

// MerchantCommand handles /떠돌이상인: shows merchants reported during the
// current KST spawn window, grouped by continent.
func MerchantCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("merchant")
	user := interactionUser(i)

	logger.Info("Merchant command executed", map[string]interface{}{
		"user_id":  user.DiscordID,
		"guild_id": i.GuildID,
	})

	intervalStart := currentIntervalStart(time.Now().In(kst))
	if intervalStart == nil {
		metrics.CommandsTotal.WithLabelValues("merchant", "ok").Inc()
		respondText(s, i, "현재 떠상 시간이 아닙니다.", true)
		return
	}

	merchants, err := fetchMerchants()
	if err != nil {
		metrics.CommandsTotal.WithLabelValues("merchant", "error").Inc()
		logger.Error("Failed to fetch merchant data", err, nil)
		respondEmbed(s, i, errorEmbeds.Error("떠돌이상인", "떠돌이 상인 정보를 불러오는 데 실패했습니다."), true)
		return
	}

	filtered := filterByInterval(merchants, *intervalStart)
	if len(filtered) == 0 {
		metrics.CommandsTotal.WithLabelValues("merchant", "ok").Inc()
		respondText(s, i, "현재 해당 시간대에 등록된 떠상이 없습니다.", true)
		return
	}

	metrics.CommandsTotal.WithLabelValues("merchant", "ok").Inc()
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{merchantEmbed(filtered, *intervalStart)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func fetchMerchants() ([]merchant, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(merchantAPIURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("merchant api returned status %d", resp.StatusCode)
	}

	var body merchantResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Merchants, nil
}

// currentIntervalStart returns the start of the spawn window covering now,
// nil when no window is active.
func currentIntervalStart(now time.Time) *time.Time {
	for _, iv := range merchantIntervals {
		start := time.Date(now.Year(), now.Month(), now.Day(), iv.startHour, iv.startMin, 0, 0, kst)
		end := time.Date(now.Year(), now.Month(), now.Day(), iv.endHour, iv.endMin, 0, 0, kst)

		if !end.Before(start) {
			if !now.Before(start) && !now.After(end) {
				return &start
			}
			continue
		}

		// Window wraps past midnight.
		if !now.Before(start) {
			return &start
		}
		if !now.After(end) {
			wrapped := start.AddDate(0, 0, -1)
			return &wrapped
		}
	}
	return nil
}

// filterByInterval keeps merchants reported after the window opened. The API
// reports timestamps in UTC.
func filterByInterval(merchants []merchant, intervalStart time.Time) []merchant {
	var filtered []merchant
	for _, m := range merchants {
		if m.CreatedAt == "" {
			continue
		}
		created, err := time.Parse(time.RFC3339, m.CreatedAt)
		if err != nil {
			continue
		}
		if !created.In(kst).Before(intervalStart) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func merchantEmbed(merchants []merchant, intervalStart time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "현재 떠돌이 상인 정보",
		Description: fmt.Sprintf("아래는 현재 떠상 시간대 내에 등록된 정보입니다.\n**시작 시각 (KST)**: %s",
			intervalStart.Format("2006-01-02 15:04")),
		Color:     0x2ecc71, // Green
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "출처: kloa.gg",
		},
	}

	type continentItems struct {
		cards  []string
		favors []string
		others []string
	}

	order := make([]string, 0)
	grouped := make(map[string]*continentItems)

	for _, m := range merchants {
		continent := m.Continent
		if continent == "" {
			continent = "알 수 없음"
		}
		if _, ok := grouped[continent]; !ok {
			grouped[continent] = &continentItems{}
			order = append(order, continent)
		}
		bucket := grouped[continent]

		for _, item := range m.Items {
			switch item.Type {
			case 0: // card
				bucket.cards = appendUnique(bucket.cards, fmt.Sprintf("**%s**", item.Content))
			case 1: // favor item
				switch item.Content {
				case "0":
					bucket.favors = appendUnique(bucket.favors, "영웅 호감도")
				case "1":
					bucket.favors = appendUnique(bucket.favors, "**전설 호감도**")
				default:
					bucket.others = appendUnique(bucket.others, fmt.Sprintf("**%s**", item.Content))
				}
			default:
				bucket.others = appendUnique(bucket.others, fmt.Sprintf("**%s**", item.Content))
			}
		}
	}

	for _, continent := range order {
		bucket := grouped[continent]
		var parts []string
		if len(bucket.cards) > 0 {
			parts = append(parts, "**[카드]**\n"+bulletList(bucket.cards))
		}
		if len(bucket.favors) > 0 {
			parts = append(parts, "**[호감도]**\n"+bulletList(bucket.favors))
		}
		if len(bucket.others) > 0 {
			parts = append(parts, "**[기타 아이템]**\n"+bulletList(bucket.others))
		}

		value := "정보 없음"
		if len(parts) > 0 {
			value = strings.Join(parts, "\n\n")
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("🌏 %s", continent),
			Value:  value,
			Inline: false,
		})
	}

	return embed
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}

func bulletList(items []string) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
