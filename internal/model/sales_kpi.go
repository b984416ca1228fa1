package model

import (
	"time"

	"github.com/google/uuid"
)

// SalesKpi records sales counts for one shift across the five product
// categories. One record per shift — enforced by the (user_id, shift_id)
// unique index in addition to the application-level existence check.
type SalesKpi struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_shift_kpi"`
	ShiftID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_shift_kpi"`
	TechInsuranceSales    int       `gorm:"not null;default:0"`
	InstantInsuranceSales int       `gorm:"not null;default:0"`
	SkyTVSales            int       `gorm:"not null;default:0"`
	SkyBroadbandSales     int       `gorm:"not null;default:0"`
	SkyStreamingSales     int       `gorm:"not null;default:0"`
	Notes                 *string
	CreatedAt             time.Time

	Shift *Shift `gorm:"foreignKey:ShiftID"`
}

// Total sums all five counters.
func (k *SalesKpi) Total() int {
	return k.TechInsuranceSales + k.InstantInsuranceSales + k.SkyTVSales +
		k.SkyBroadbandSales + k.SkyStreamingSales
}
