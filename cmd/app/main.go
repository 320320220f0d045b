package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rental/cmd"
	httpserver "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/gcs"
	"rental/internal/adapters/out/postgres/driverrepo"
	"rental/internal/adapters/out/postgres/motorcyclerepo"
	"rental/internal/adapters/out/postgres/rentrepo"
	"rental/internal/adapters/out/pubsub"
)

func main() {
	ctx := context.Background()
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	pubsubClient, err := gcppubsub.NewClient(ctx, configs.PubSubProjectID)
	if err != nil {
		log.Fatalf("Failed to create pubsub client: %v", err)
	}
	publisher := pubsub.NewPublisher(pubsubClient, configs.PubSubTopic)
	defer publisher.Stop()

	fileStore, err := gcs.NewClient(configs.GcsBucket, gcsTokenSource(configs))
	if err != nil {
		log.Fatalf("Failed to create gcs client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, fileStore, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		PubSubProjectID: goDotEnvVariable("PUBSUB_PROJECT_ID"),
		PubSubTopic:     goDotEnvVariable("PUBSUB_TOPIC"),
		GcsBucket:       goDotEnvVariable("GCS_BUCKET"),
		GcsAccessToken:  goDotEnvVariable("GCS_ACCESS_TOKEN"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&motorcyclerepo.MotorcycleDTO{},
		&driverrepo.DriverDTO{},
		&rentrepo.RentDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// gcsTokenSource uses a static token when one is configured (local
// development against an emulator) and the metadata server otherwise.
func gcsTokenSource(configs cmd.Config) gcs.TokenSource {
	if configs.GcsAccessToken != "" {
		return gcs.StaticTokenSource(configs.GcsAccessToken)
	}
	return gcs.NewMetadataTokenSource(nil)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		app.CreateCreateMotorcycleCommandHandler(),
		app.CreateChangeMotorcyclePlacaCommandHandler(),
		app.CreateDeleteMotorcycleByCodeCommandHandler(),
		app.CreateCreateDeliveryDriverCommandHandler(),
		app.CreateAttachDriverCnhImageCommandHandler(),
		app.CreateCreateVehicleRentCommandHandler(),
		app.CreateReturnVehicleRentCommandHandler(),
		app.CreateListMotorcyclesQueryHandler(),
		app.CreateListDeliveryDriversQueryHandler(),
		app.CreateGetVehicleRentByIDQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
