package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-frontend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase ensures the room display-metadata catalog exists. The category
// strings must match the external API's room-types feed exactly — the catalog
// join is keyed on them.
func SeedDatabase() {
	var count int64
	DB.Model(&models.RoomDisplayInfo{}).Count(&count)
	if count > 0 {
		log.Println("Room display metadata already seeded")
		return
	}

	rooms := []models.RoomDisplayInfo{
		{
			Category:    "Standard",
			DisplayName: "Standard Room",
			AreaSqm:     28,
			Summary:     "Garden-facing room with a private balcony and a day bed.",
			Highlights:  datatypes.JSON([]byte(`["Garden view","Private balcony","Rain shower"]`)),
			Images:      datatypes.JSON([]byte(`["/images/rooms/standard-1.jpg","/images/rooms/standard-2.jpg"]`)),
		},
		{
			Category:    "Superior",
			DisplayName: "Superior Room",
			AreaSqm:     36,
			Summary:     "Corner room overlooking the lotus pond, with a reading nook.",
			Highlights:  datatypes.JSON([]byte(`["Pond view","Reading nook","Bathtub"]`)),
			Images:      datatypes.JSON([]byte(`["/images/rooms/superior-1.jpg","/images/rooms/superior-2.jpg"]`)),
		},
		{
			Category:    "Deluxe",
			DisplayName: "Deluxe Room",
			AreaSqm:     44,
			Summary:     "Spacious room with a separate sitting area and therapy-garden access.",
			Highlights:  datatypes.JSON([]byte(`["Therapy garden access","Sitting area","King bed"]`)),
			Images:      datatypes.JSON([]byte(`["/images/rooms/deluxe-1.jpg","/images/rooms/deluxe-2.jpg"]`)),
		},
		{
			Category:    "Garden Villa",
			DisplayName: "Garden Villa",
			AreaSqm:     62,
			Summary:     "Standalone villa with a private plunge pool and outdoor shower.",
			Highlights:  datatypes.JSON([]byte(`["Private plunge pool","Outdoor shower","Butler service"]`)),
			Images:      datatypes.JSON([]byte(`["/images/rooms/villa-1.jpg","/images/rooms/villa-2.jpg"]`)),
		},
	}

	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed room display metadata: %v", err)
		return
	}
	log.Println("Room display metadata seeded")
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(AppConfig.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", AppConfig.DBUser)
	pass := envOrDefault("DB_PASS", AppConfig.DBPass)
	host := envOrDefault("DB_HOST", AppConfig.DBHost)
	port := envOrDefault("DB_PORT", AppConfig.DBPort)
	dbName := envOrDefault("DB_NAME", AppConfig.DBName)

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(&models.RoomDisplayInfo{}); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
