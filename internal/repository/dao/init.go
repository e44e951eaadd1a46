package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Candidate{},
		&Transaction{},
	)
}

// SeedCandidates inserts the default contest roster when the candidates table
// is empty. Returns the number of rows inserted (0 when already seeded).
func SeedCandidates(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&Candidate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	roster := []Candidate{
		{ID: "miss1", Name: "Fatou Diop", Category: "miss", Image: "Photo/miss1.jpg"},
		{ID: "miss2", Name: "Aïcha Sow", Category: "miss", Image: "Photo/miss2.jpg"},
		{ID: "miss3", Name: "Mariam Diallo", Category: "miss", Image: "Photo/miss3.jpg"},
		{ID: "mister1", Name: "Mamadou Fall", Category: "mister", Image: "Photo/mister1.jpg"},
		{ID: "mister2", Name: "Ibrahima Ndiaye", Category: "mister", Image: "Photo/mister2.jpg"},
		{ID: "mister3", Name: "Abdoulaye Diop", Category: "mister", Image: "Photo/mister3.jpg"},
	}

	result := db.Create(&roster)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
