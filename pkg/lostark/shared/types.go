package shared

// SiblingCharacter is one entry of the Lost Ark siblings API response.
// ItemAvgLevel arrives as a thousands-separated decimal string ("1,650.50").
type SiblingCharacter struct {
	CharacterName      string `json:"CharacterName"`
	CharacterClassName string `json:"CharacterClassName"`
	ItemAvgLevel       string `json:"ItemAvgLevel"`
	ServerName         string `json:"ServerName"`
}

// ArmoryProfile holds the subset of the armory response the bot cares about.
type ArmoryProfile struct {
	CharacterImage  string `json:"CharacterImage"`
	ExpeditionLevel int    `json:"ExpeditionLevel"`
}

// Character is one roster member inside an expedition. Exactly one character
// per expedition carries MainCharacter = true.
type Character struct {
	CharacterName  string
	CharacterClass string
	ItemLevel      int
	ServerName     string
	MainCharacter  bool
}

// Expedition groups a user's characters on a single server around the main
// character's armory profile.
type Expedition struct {
	ServerName      string
	ExpeditionLevel int
	CharacterImage  string
	Characters      []Character
}

// DiscordUser identifies the invoking Discord account for persistence.
type DiscordUser struct {
	DiscordID     string
	DiscordName   string
	DiscordAvatar string
}

// ExpeditionSyncResult is what a search/register sync returns to the command
// layer: a user-facing status message plus the assembled expeditions.
type ExpeditionSyncResult struct {
	Message     string
	Expeditions []Expedition
	Registered  bool
}

// CommandKind selects which expedition operation a request performs.
type CommandKind int

const (
	CommandSearch CommandKind = iota
	CommandRegister
	CommandListSaved
)

// CommandRequest is the single typed entry into the expedition service.
type CommandRequest struct {
	Kind          CommandKind
	User          DiscordUser
	CharacterName string
}
