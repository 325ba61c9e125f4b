package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MenuPrecios holds the fixed combo prices. These are configuration, not
// data: a combo line is billed at these amounts regardless of what its
// component plato costs a la carte.
type MenuPrecios struct {
	Completo    float64 // entrada + segundo
	SoloEntrada float64
	SoloSegundo float64
}

var menuPrecios = MenuPrecios{
	Completo:    13.00,
	SoloEntrada: 7.00,
	SoloSegundo: 10.00,
}

// LoadMenuPrecios reads combo price overrides from the environment.
func LoadMenuPrecios() MenuPrecios {
	if v, err := strconv.ParseFloat(os.Getenv("MENU_PRECIO_COMPLETO"), 64); err == nil && v > 0 {
		menuPrecios.Completo = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("MENU_PRECIO_ENTRADA"), 64); err == nil && v > 0 {
		menuPrecios.SoloEntrada = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("MENU_PRECIO_SEGUNDO"), 64); err == nil && v > 0 {
		menuPrecios.SoloSegundo = v
	}
	return menuPrecios
}

// GetMenuPrecios returns the current combo price table.
func GetMenuPrecios() MenuPrecios {
	return menuPrecios
}

// InitDB opens the MySQL connection from DB_* environment variables.
func InitDB() (*gorm.DB, error) {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	name := getEnv("DB_NAME", "grub_genius")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
