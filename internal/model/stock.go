package model

import "github.com/shopspring/decimal"

type StockClass string

const (
	StockClassMotor    StockClass = "MOTOR"
	StockClassGearbox  StockClass = "GEARBOX"
	StockClassBearing  StockClass = "BEARING"
	StockClassWearBit  StockClass = "WEAR_BIT"
	StockClassFastener StockClass = "FASTENER"
	StockClassDefault  StockClass = "DEFAULT"
)

// StockGroup is the installed base behind one stock key.
type StockGroup struct {
	Key            string
	Class          StockClass
	Installed      int64
	PartIDs        []int64
	Representative *Part
	Target         int64
}

// SpareSlot is a warehouse spare row that does not exist yet.
type SpareSlot struct {
	StockKey  string
	Installed int64
	Part      Part
}

type MinQuantityUpdate struct {
	PartID   int64
	StockKey string
	From     int64
	To       int64
}

type StockPlan struct {
	Groups             []StockGroup
	MinUpdates         []MinQuantityUpdate
	Spares             []SpareSlot
	EstimatedSpareCost decimal.Decimal
}

type StockPlanResult struct {
	MinUpdated    int
	SparesCreated int
}
