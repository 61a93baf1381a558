package models

// ShipMod is one ship at one specific upgrade stage, merged across sources.
// Every source record is optional.
type ShipMod struct {
	Name     string         `json:"name"`
	Stage    int            `json:"stage"`
	Book     *BookEntry     `json:"book,omitempty"`
	Roster   *RosterEntry   `json:"roster,omitempty"`
	Marriage *MarriageEntry `json:"marriage,omitempty"`
	Wiki     *WikiEntry     `json:"wiki,omitempty"`
}

// Owned reports whether the player owns this stage, either in the roster or as an acquired card.
func (m ShipMod) Owned() bool {
	return m.Roster != nil || (m.Book != nil && m.Book.Owned())
}

// ShipType returns the hull category reported by the first source that has one.
func (m ShipMod) ShipType() string {
	switch {
	case m.Book != nil && m.Book.ShipType != "":
		return m.Book.ShipType
	case m.Roster != nil && m.Roster.ShipType != "":
		return m.Roster.ShipType
	case m.Wiki != nil && m.Wiki.ShipType != "":
		return m.Wiki.ShipType
	}
	return ""
}

// Ship groups every stage of one base ship.
// Mods is sorted by strictly increasing Stage.
type Ship struct {
	Name      string     `json:"name"`
	Blueprint *Blueprint `json:"blueprint,omitempty"`
	Mods      []ShipMod  `json:"mods"`
}

// ShipType returns the hull category of the ship.
func (s Ship) ShipType() string {
	if s.Blueprint != nil && s.Blueprint.ShipType != "" {
		return s.Blueprint.ShipType
	}
	for _, m := range s.Mods {
		if t := m.ShipType(); t != "" {
			return t
		}
	}
	return ""
}

// Mod returns the stage record for stage.
func (s Ship) Mod(stage int) (*ShipMod, bool) {
	for i := range s.Mods {
		if s.Mods[i].Stage == stage {
			return &s.Mods[i], true
		}
	}
	return nil, false
}

// HighestOwnedStage returns the highest owned stage, or -1 if no stage is owned.
func (s Ship) HighestOwnedStage() int {
	highest := -1
	for _, m := range s.Mods {
		if m.Owned() && m.Stage > highest {
			highest = m.Stage
		}
	}
	return highest
}
