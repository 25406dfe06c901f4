package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// discordEpochMs is the offset of message/user snowflake timestamps.
const discordEpochMs = 1420070400000

type Connection struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type Payment struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// AccountProfile is built once by the profile parser and never mutated
// afterwards. Missing export fields keep their zero values.
type AccountProfile struct {
	ID            string             `json:"id"`
	Username      string             `json:"username"`
	Discriminator string             `json:"discriminator"`
	GlobalName    string             `json:"global_name"`
	Email         string             `json:"email,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	AvatarHash    string             `json:"avatar_hash"`
	PremiumType   int                `json:"premium_type"`
	Flags         int                `json:"flags"`
	Connections   []Connection       `json:"connections"`
	FriendCount   int                `json:"friend_count"`
	BlockedCount  int                `json:"blocked_count"`
	Payments      []Payment          `json:"payments"`
	PaymentCount  int                `json:"payment_count"`
	TotalSpent    map[string]float64 `json:"total_spent"`
	RecentAvatars []string           `json:"recent_avatars"`
}

// CreatedAt derives the account creation time from the snowflake id.
func (p *AccountProfile) CreatedAt() time.Time {
	snowflake, err := strconv.ParseUint(p.ID, 10, 64)
	if err != nil {
		return time.Time{}
	}
	ms := int64(snowflake>>22) + discordEpochMs
	return time.UnixMilli(ms).UTC()
}

func (p *AccountProfile) AccountAgeDays() int {
	created := p.CreatedAt()
	if created.IsZero() {
		return 0
	}
	return int(time.Since(created).Hours() / 24)
}

func (p *AccountProfile) NitroTier() string {
	switch p.PremiumType {
	case 1:
		return "Nitro Classic"
	case 2:
		return "Nitro"
	case 3:
		return "Nitro Basic"
	default:
		return "None"
	}
}

// MaskedEmail keeps the first two characters and the domain.
func (p *AccountProfile) MaskedEmail() string {
	at := strings.Index(p.Email, "@")
	if at < 0 {
		return ""
	}
	prefix := p.Email[:at]
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return prefix + "***" + p.Email[at:]
}

// AvatarURL builds the CDN URL for the current avatar. The core never
// fetches it.
func (p *AccountProfile) AvatarURL() string {
	if p.AvatarHash == "" || p.ID == "" {
		return ""
	}
	ext := "png"
	if strings.HasPrefix(p.AvatarHash, "a_") {
		ext = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.%s?size=128", p.ID, p.AvatarHash, ext)
}

func (p *AccountProfile) FormattedTotalSpent() string {
	if len(p.TotalSpent) == 0 {
		return "$0.00"
	}
	parts := make([]string, 0, len(p.TotalSpent))
	for cur, amount := range p.TotalSpent {
		parts = append(parts, fmt.Sprintf("%s %.2f", strings.ToUpper(cur), amount))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
