package game

// Mode identifies a match configuration.
type Mode string

const (
	Mode1v1 Mode = "1v1"
	Mode2v2 Mode = "2v2"
	Mode3v3 Mode = "3v3"
	Mode4v4 Mode = "4v4"
	ModeFFA Mode = "ffa"
)

// ModeConfig is the static configuration a mode maps to. Teams is zero for
// free-for-all, where every slot is its own team.
type ModeConfig struct {
	Teams      int
	PerTeam    int
	MaxPlayers int
	FirstTo    int
}

var modeConfigs = map[Mode]ModeConfig{
	Mode1v1: {Teams: 2, PerTeam: 1, MaxPlayers: 2, FirstTo: 10},
	Mode2v2: {Teams: 2, PerTeam: 2, MaxPlayers: 4, FirstTo: 20},
	Mode3v3: {Teams: 2, PerTeam: 3, MaxPlayers: 6, FirstTo: 30},
	Mode4v4: {Teams: 2, PerTeam: 4, MaxPlayers: 8, FirstTo: 40},
	ModeFFA: {Teams: 0, PerTeam: 0, MaxPlayers: 8, FirstTo: 15},
}

// LookupMode resolves a wire mode string. Unknown strings are protocol noise
// and the caller drops the message.
func LookupMode(s string) (Mode, ModeConfig, bool) {
	mode := Mode(s)
	cfg, ok := modeConfigs[mode]
	return mode, cfg, ok
}
