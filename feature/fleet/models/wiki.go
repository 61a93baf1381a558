package models

// WikiEntry is one row of a community wiki ship table.
type WikiEntry struct {
	Name     string `json:"name"`
	ShipType string `json:"shipType"`
	// Modified is set for rows of the modified-hull table.
	Modified bool      `json:"modified"`
	Stats    WikiStats `json:"stats"`
	Remarks  string    `json:"remarks,omitempty"`
}

// WikiStats holds the base stats listed by the wiki.
type WikiStats struct {
	HP           int    `json:"hp"`
	Armor        int    `json:"armor"`
	Firepower    int    `json:"firepower"`
	Torpedo      int    `json:"torpedo"`
	AntiAir      int    `json:"antiAir"`
	AntiSub      int    `json:"antiSub"`
	Evasion      int    `json:"evasion"`
	LineOfSight  int    `json:"lineOfSight"`
	Luck         int    `json:"luck"`
	Speed        string `json:"speed"`
	Range        string `json:"range"`
	AircraftSlot int    `json:"aircraftSlot"`
}
