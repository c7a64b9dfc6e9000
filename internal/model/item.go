package model

// MasterItem maps the narrow columns of items_new that the bulk-upload path
// writes. The table itself is wide — one item-name column and one width
// column per category, plus rate columns whose naming drifted across
// spreadsheet imports — so the read path deliberately bypasses this struct
// and scans rows as loose column maps (see ItemRepository.AllRows).
type MasterItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Category     string `gorm:"column:category"`
	ItemName     string `gorm:"column:item_name;uniqueIndex"`
	DefaultWidth string `gorm:"column:default_width"`
}

func (MasterItem) TableName() string { return "items_new" }
