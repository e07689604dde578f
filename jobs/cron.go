package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RatingRecomputer tính lại rating tổng hợp của mọi hotel
type RatingRecomputer interface {
	RecomputeAllRatings() error
}

// CodePurger dọn các verification/reset code đã hết hạn
type CodePurger interface {
	PurgeExpiredCodes() error
}

var (
	ratingRecomputer RatingRecomputer
	codePurger       CodePurger
)

// SetRatingRecomputer thiết lập implementation cho RatingRecomputer
func SetRatingRecomputer(r RatingRecomputer) {
	ratingRecomputer = r
}

// SetCodePurger thiết lập implementation cho CodePurger
func SetCodePurger(p CodePurger) {
	codePurger = p
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Tính lại rating hotel lúc 3h sáng mỗi ngày
	_, err := c.AddFunc("0 3 * * *", func() {
		log.Printf("Recomputing hotel ratings at: %v", time.Now())
		if ratingRecomputer == nil {
			log.Printf("RatingRecomputer not configured")
			return
		}
		if err := ratingRecomputer.RecomputeAllRatings(); err != nil {
			log.Printf("Failed to recompute hotel ratings: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Dọn code hết hạn mỗi giờ
	_, err = c.AddFunc("0 * * * *", func() {
		if codePurger == nil {
			return
		}
		if err := codePurger.PurgeExpiredCodes(); err != nil {
			log.Printf("Failed to purge expired codes: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
