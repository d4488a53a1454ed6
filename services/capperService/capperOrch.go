package capperService

import (
	"errors"

	"capperRanksBot/models"

	"gorm.io/gorm"
)

// GetCapperByUsername returns (nil, nil) when the capper is not tracked.
func GetCapperByUsername(db *gorm.DB, username string) (*models.Capper, error) {
	var capper models.Capper
	err := db.Where("username = ?", username).First(&capper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &capper, nil
}

// AddCapper registers a capper for tracking, updating the stored account ID
// if the handle was seen before.
func AddCapper(db *gorm.DB, capperID string, username string) (*models.Capper, error) {
	existing, err := GetCapperByUsername(db, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.CapperID != capperID {
			existing.CapperID = capperID
			if err := db.Save(existing).Error; err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	capper := models.Capper{CapperID: capperID, Username: username}
	if err := db.Create(&capper).Error; err != nil {
		return nil, err
	}
	return &capper, nil
}

func GetAllCappers(db *gorm.DB) ([]models.Capper, error) {
	var cappers []models.Capper
	if err := db.Find(&cappers).Error; err != nil {
		return nil, err
	}
	return cappers, nil
}

// RemoveCapperByUsername stops tracking a capper. Their bets stay on record.
func RemoveCapperByUsername(db *gorm.DB, username string) error {
	capper, err := GetCapperByUsername(db, username)
	if err != nil {
		return err
	}
	if capper == nil {
		return nil
	}
	return db.Delete(capper).Error
}

// UpdateLastSeenPostID advances the scan checkpoint for a capper.
func UpdateLastSeenPostID(db *gorm.DB, capperID uint, postID string) error {
	return db.Model(&models.Capper{}).Where("id = ?", capperID).
		Update("last_seen_post_id", postID).Error
}
