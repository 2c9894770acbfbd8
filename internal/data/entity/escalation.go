package entity

import "time"

type EscalationLevel string

const (
	LevelGP    EscalationLevel = "gp"
	LevelTaluk EscalationLevel = "taluk"
	LevelMLA   EscalationLevel = "mla"
)

func (l EscalationLevel) Valid() bool {
	switch l {
	case LevelGP, LevelTaluk, LevelMLA:
		return true
	}
	return false
}

// EscalationSetting is the time limit, in hours, configured for one level.
type EscalationSetting struct {
	Level     EscalationLevel `db:"level"`
	TimeLimit int             `db:"time_limit"`
	UpdatedAt time.Time       `db:"updated_at"`
}
