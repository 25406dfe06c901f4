package scanner

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const dmNamePrefix = "Direct Message with "

// ChannelDescriptor is the classification outcome for one channel
// folder. It lives only long enough to route the folder's messages into
// the right scope; the snapshot keeps the outcome, not the descriptor.
type ChannelDescriptor struct {
	ID      string
	GuildID string
	DM      bool
	DMName  string
	Path    string
}

// channelFolder is one entry of the flattened scan work list.
type channelFolder struct {
	path string
	// parentGuild is the guild folder name when the channel sits under a
	// Servers tree, empty for the flat DM layout.
	parentGuild string
}

// classifyChannel resolves a channel folder to exactly one scope.
// Resolution order: explicit metadata, structural position under the
// Servers tree, the "<channel> in <server>" naming heuristic from the DM
// index, and finally the DM default. The two fallbacks are last-resort
// guesses and can be wrong when metadata is absent; classification is
// still total.
func classifyChannel(folder channelFolder, dmIndex map[string]string) ChannelDescriptor {
	desc := ChannelDescriptor{
		ID:   filepath.Base(folder.path),
		Path: folder.path,
	}

	if meta := readChannelMeta(folder.path); meta != nil {
		if id := cast.ToString(meta.ID); id != "" {
			desc.ID = id
		}
		if gid := cast.ToString(meta.GuildID); gid != "" {
			desc.GuildID = gid
		} else if meta.Guild != nil {
			desc.GuildID = cast.ToString(meta.Guild.ID)
		}
		if t, ok := meta.Type.(float64); ok {
			// 1 = direct message, 3 = group direct message.
			desc.DM = int(t) == 1 || int(t) == 3
		} else if len(meta.Recipients) > 0 {
			desc.DM = true
		}
	}

	if desc.GuildID == "" && folder.parentGuild != "" {
		desc.GuildID = folder.parentGuild
	}

	name := dmIndex[desc.ID]
	if desc.GuildID == "" && !desc.DM {
		// Naming fallback: "general in Some Server" points at a guild
		// the metadata never named. Known limitation: a DM whose name
		// happens to contain " in " is misread here.
		if idx := strings.LastIndex(name, " in "); idx > 0 {
			desc.GuildID = name[idx+len(" in "):]
		}
	}

	if desc.GuildID == "" {
		desc.DM = true
		desc.DMName = strings.TrimPrefix(name, dmNamePrefix)
		if desc.DMName == "" {
			desc.DMName = "Unknown DM"
		}
	}

	return desc
}

func readChannelMeta(dir string) *channelSchema {
	data, err := os.ReadFile(filepath.Join(dir, "channel.json"))
	if err != nil {
		return nil
	}
	var meta channelSchema
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil
	}
	return &meta
}
