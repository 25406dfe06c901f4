package scanner

// Export schema structs. The package format drifted over the years, so
// every field is optional; identifiers that Discord sometimes writes as
// JSON numbers and sometimes as strings are declared `any` and coerced
// with spf13/cast at the point of use.

type userSchema struct {
	ID            any                `json:"id"`
	Username      string             `json:"username"`
	Discriminator any                `json:"discriminator"`
	GlobalName    string             `json:"global_name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	AvatarHash    string             `json:"avatar_hash"`
	PremiumType   any                `json:"premium_type"`
	Flags         any                `json:"flags"`
	Connections   []connectionSchema `json:"connections"`
	Relationships []relationSchema   `json:"relationships"`
	Payments      []paymentSchema    `json:"payments"`
}

type connectionSchema struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type relationSchema struct {
	Type any `json:"type"`
}

type paymentSchema struct {
	Amount    any    `json:"amount"`
	Currency  string `json:"currency"`
	Status    any    `json:"status"`
	CreatedAt string `json:"created_at"`
}

type guildSchema struct {
	ID any `json:"id"`
}

type channelSchema struct {
	ID         any          `json:"id"`
	Type       any          `json:"type"`
	Name       string       `json:"name"`
	GuildID    any          `json:"guild_id"`
	Guild      *guildSchema `json:"guild"`
	Recipients []any        `json:"recipients"`
}

type messageSchema struct {
	ID          any    `json:"ID"`
	Timestamp   string `json:"Timestamp"`
	Contents    string `json:"Contents"`
	Attachments string `json:"Attachments"`
}

type botSchema struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	BotToken    string `json:"bot_token"`
	PublicKey   string `json:"public_key"`
}

type ticketSchema struct {
	ID        any                   `json:"id"`
	Status    string                `json:"status"`
	Subject   string                `json:"subject"`
	CreatedAt string                `json:"created_at"`
	Messages  []ticketMessageSchema `json:"messages"`
}

type ticketMessageSchema struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
