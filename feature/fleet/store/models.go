package store

import "time"

// ShipRow is one exported ship.
type ShipRow struct {
	ID                 int    `gorm:"primaryKey;column:id"`
	Name               string `gorm:"column:name;type:varchar(64);uniqueIndex"`
	ShipType           string `gorm:"column:ship_type;type:varchar(32)"`
	Stages             int    `gorm:"column:stages;type:int;default:0"`
	HighestOwnedStage  int    `gorm:"column:highest_owned_stage;type:int"`
	Blueprints         int    `gorm:"column:blueprints;type:int;default:0"`
	BlueprintsExpiring int    `gorm:"column:blueprints_expiring;type:int;default:0"`
	Snapshot           string `gorm:"column:snapshot;type:varchar(255)"`
}

func (ShipRow) TableName() string {
	return "ships"
}

// ModRow is one exported stage record.
type ModRow struct {
	ID         int        `gorm:"primaryKey;column:id"`
	ShipName   string     `gorm:"column:ship_name;type:varchar(64);index"`
	Name       string     `gorm:"column:name;type:varchar(64);uniqueIndex"`
	Stage      int        `gorm:"column:stage;type:int;default:0"`
	BookNo     int        `gorm:"column:book_no;type:int;default:0"`
	AcquireNum int        `gorm:"column:acquire_num;type:int;default:0"`
	Variations int        `gorm:"column:variation_num;type:int;default:0"`
	Level      int        `gorm:"column:lv;type:int;default:0"`
	Stars      int        `gorm:"column:star_num;type:int;default:0"`
	Married    bool       `gorm:"column:married;type:tinyint(1);default:0"`
	MarriedAt  *time.Time `gorm:"column:married_at;type:datetime"`
	InBook     bool       `gorm:"column:in_book;type:tinyint(1);default:0"`
	InRoster   bool       `gorm:"column:in_roster;type:tinyint(1);default:0"`
	InMarriage bool       `gorm:"column:in_marriage;type:tinyint(1);default:0"`
	InWiki     bool       `gorm:"column:in_wiki;type:tinyint(1);default:0"`
	Snapshot   string     `gorm:"column:snapshot;type:varchar(255)"`
}

func (ModRow) TableName() string {
	return "ship_mods"
}

// Models lists the exported models, in migration order.
func Models() []any {
	return []any{ShipRow{}, ModRow{}}
}
