package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"hotel-booking/config"
	"hotel-booking/failure"
)

const APIVersion = "1.0.0"

type TableInfo struct {
	TableName string `json:"TABLE_NAME"`
	TableRows int64  `json:"TABLE_ROWS"`
}

// SystemService answers the storage probes used by the dashboard.
type SystemService struct {
	DB   *gorm.DB
	Info config.ConnectionInfo
}

func NewSystemService(db *gorm.DB, info config.ConnectionInfo) *SystemService {
	return &SystemService{DB: db, Info: info}
}

// Ping checks that the store answers a trivial query.
func (s *SystemService) Ping(ctx context.Context) error {
	var one int
	if err := s.DB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return failure.Storage(err)
	}
	return nil
}

// Tables lists the schema's tables with their current row counts.
func (s *SystemService) Tables(ctx context.Context) ([]TableInfo, error) {
	db := s.DB.WithContext(ctx)

	names, err := db.Migrator().GetTables()
	if err != nil {
		return nil, failure.Storage(err)
	}
	sort.Strings(names)

	tables := make([]TableInfo, 0, len(names))
	for _, name := range names {
		var rows int64
		if err := db.Table(name).Count(&rows).Error; err != nil {
			return nil, failure.Storage(err)
		}
		tables = append(tables, TableInfo{TableName: name, TableRows: rows})
	}
	return tables, nil
}
