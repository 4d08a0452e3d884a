package entities

import "time"

const (
	AppConfigID = "main_config"

	DefaultRestaurantName = "Number ONE"
	DefaultCity           = "ROMA"
	DefaultRSSFeedURL     = "https://news.google.com/rss?hl=it&gl=IT&ceid=IT:it"
)

// AppConfig holds branding, theme and integration settings of the kiosk.
type AppConfig struct {
	ID                  string    `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	RestaurantName      string    `gorm:"column:restaurant_name;size:256" json:"restaurant_name" bson:"restaurant_name"`
	City                string    `gorm:"column:city;size:256" json:"city" bson:"city"`
	LogoBase64          *string   `gorm:"column:logo_base64;type:text" json:"logo_base64" bson:"logo_base64"`
	ThemePrimaryColor   string    `gorm:"column:theme_primary_color;size:32" json:"theme_primary_color" bson:"theme_primary_color"`
	ThemeSecondaryColor string    `gorm:"column:theme_secondary_color;size:32" json:"theme_secondary_color" bson:"theme_secondary_color"`
	ThemeTextColor      string    `gorm:"column:theme_text_color;size:32" json:"theme_text_color" bson:"theme_text_color"`
	RSSFeedURL          string    `gorm:"column:rss_feed_url;size:2048" json:"rss_feed_url" bson:"rss_feed_url"`
	WeatherAPIKey       *string   `gorm:"column:weather_api_key;size:256" json:"weather_api_key" bson:"weather_api_key"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updated_at" bson:"updated_at"`
}

func (AppConfig) TableName() string {
	return "app_config"
}

func DefaultAppConfig() *AppConfig {
	now := time.Now().UTC()
	return &AppConfig{
		ID:                  AppConfigID,
		RestaurantName:      DefaultRestaurantName,
		City:                DefaultCity,
		ThemePrimaryColor:   "#FF0000",
		ThemeSecondaryColor: "#2C3E50",
		ThemeTextColor:      "#FFFFFF",
		RSSFeedURL:          DefaultRSSFeedURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// AppConfigUpdate is a partial update; nil fields are left unchanged.
// Colors and URLs are stored verbatim.
type AppConfigUpdate struct {
	RestaurantName      *string `json:"restaurant_name"`
	City                *string `json:"city"`
	LogoBase64          *string `json:"logo_base64"`
	ThemePrimaryColor   *string `json:"theme_primary_color"`
	ThemeSecondaryColor *string `json:"theme_secondary_color"`
	ThemeTextColor      *string `json:"theme_text_color"`
	RSSFeedURL          *string `json:"rss_feed_url"`
	WeatherAPIKey       *string `json:"weather_api_key"`
}

// Fields returns the supplied fields plus a fresh updated_at stamp.
func (u AppConfigUpdate) Fields(now time.Time) Fields {
	f := Fields{"updated_at": now}
	put(f, "restaurant_name", u.RestaurantName)
	put(f, "city", u.City)
	put(f, "logo_base64", u.LogoBase64)
	put(f, "theme_primary_color", u.ThemePrimaryColor)
	put(f, "theme_secondary_color", u.ThemeSecondaryColor)
	put(f, "theme_text_color", u.ThemeTextColor)
	put(f, "rss_feed_url", u.RSSFeedURL)
	put(f, "weather_api_key", u.WeatherAPIKey)
	return f
}
