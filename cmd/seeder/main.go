// Seeder provisions users and sample word entries. The API has no signup
// endpoint; this is the external provisioning tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"wordblog/internal/logger"
	"wordblog/internal/models"
	"wordblog/internal/repository"
	"wordblog/internal/repository/db"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/viper"
)

func main() {
	user := flag.String("user", "", "user to create, as username:password")
	articles := flag.Int("articles", 0, "number of sample word entries to insert")
	flag.Parse()

	log := logger.Get(logger.InfoLevel)

	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	database, err := db.Connect(db.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		User:     viper.GetString("db.user"),
		Password: viper.GetString("db.password"),
		Name:     viper.GetString("db.name"),
	})
	if err != nil {
		log.Fatalw("failed to connect to mysql", "err", err)
	}
	defer database.Close()

	repos := repository.NewRepository(database)
	ctx := context.Background()

	if *user != "" {
		username, password, ok := strings.Cut(*user, ":")
		if !ok || username == "" || password == "" {
			log.Fatalw("invalid -user, want username:password", "got", *user)
		}
		id, err := repos.Auth.Create(username, password)
		if err != nil {
			log.Fatalw("failed to create user", "username", username, "err", err)
		}
		log.Infow("user created", "username", username, "id", id)
	}

	for i := 0; i < *articles; i++ {
		word := faker.Word()
		a := models.Article{
			Title:        strings.ToUpper(word[:1]) + word[1:],
			Introduction: faker.Sentence(),
			Link:         fmt.Sprintf("/words/%s-%d", word, i),
			Word:         faker.Paragraph(),
			TextPinyin:   faker.Word(),
			PutTime:      time.Now(),
		}
		if err := repos.Articles.Create(ctx, a); err != nil {
			log.Fatalw("failed to insert sample entry", "title", a.Title, "err", err)
		}
	}
	if *articles > 0 {
		log.Infow("sample entries inserted", "count", *articles)
	}
}

func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetEnvPrefix("WORDBLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}
