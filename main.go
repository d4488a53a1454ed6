package main

import (
	"fmt"
	"log"

	"capperRanksBot/core"
	"capperRanksBot/models"
	"capperRanksBot/scheduler"
	"capperRanksBot/scheduler/scheduler_jobs"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	err = db.AutoMigrate(&models.Capper{}, &models.Bet{}, &models.Leg{}, &models.ErrorLog{})
	if err != nil {
		log.Fatalf("migration error: %v", err)
	}

	session := openDiscord(cfg)
	if session != nil {
		defer session.Close()
	}

	// Run both jobs once at startup so a restart doesn't wait out a full
	// cron interval.
	scheduler_jobs.CheckNewPosts(session, db, cfg)
	scheduler_jobs.CheckPendingLegs(session, db, cfg)

	scheduler.SetupCron(session, db, cfg)

	log.Println("capper ranks bot running")
	select {}
}

// openDatabase picks the GORM dialector from the DATABASE_URL scheme, so the
// same binary runs against sqlite locally and mysql in production.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	u, err := dburl.Parse(databaseURL)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch u.Driver {
	case "sqlite3":
		return gorm.Open(sqlite.Open(u.DSN), gormCfg)
	case "mysql":
		return gorm.Open(mysql.Open(u.DSN+"?charset=utf8mb4&parseTime=True&loc=Local"), gormCfg)
	}
	return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
}

// openDiscord starts the announcement session. Running without a token is
// supported; picks are still tracked, just not announced.
func openDiscord(cfg *core.Config) *discordgo.Session {
	if cfg.DiscordToken == "" {
		log.Println("DISCORD_BOT_TOKEN not set, announcements disabled")
		return nil
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Printf("discord session error: %v, announcements disabled", err)
		return nil
	}
	if err := session.Open(); err != nil {
		log.Printf("discord connect error: %v, announcements disabled", err)
		return nil
	}
	return session
}
