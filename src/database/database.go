package database

import (
	"context"
	"log"
	"sync"

	"Backend-Blueview/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error
	dbName     string

	UserCollection            *mongo.Collection
	WorkerCollection          *mongo.Collection
	WorkerPassportCollection  *mongo.Collection
	ProjectCollection         *mongo.Collection
	CheckinCollection         *mongo.Collection
	DailyLogCollection        *mongo.Collection
	SubcontractorCollection   *mongo.Collection
	MaterialRequestCollection *mongo.Collection
	GeofenceEventCollection   *mongo.Collection
	SMSLogCollection          *mongo.Collection
	ReportSettingsCollection  *mongo.Collection
	TradeMappingCollection    *mongo.Collection
	NFCTagCollection          *mongo.Collection
	GeneratedReportCollection *mongo.Collection
	SiteOrientationCollection *mongo.Collection
	SafetyMeetingCollection   *mongo.Collection
	DOBDailyLogCollection     *mongo.Collection
)

// ConnectMongoDB connects once and wires up the collection handles.
func ConnectMongoDB(cfg *config.Config) error {
	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(cfg.MongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		dbName = cfg.DBName
		db := client.Database(dbName)
		UserCollection = db.Collection("users")
		WorkerCollection = db.Collection("workers")
		WorkerPassportCollection = db.Collection("worker_passports")
		ProjectCollection = db.Collection("projects")
		CheckinCollection = db.Collection("checkins")
		DailyLogCollection = db.Collection("daily_logs")
		SubcontractorCollection = db.Collection("subcontractors")
		MaterialRequestCollection = db.Collection("material_requests")
		GeofenceEventCollection = db.Collection("geofence_events")
		SMSLogCollection = db.Collection("sms_logs")
		ReportSettingsCollection = db.Collection("report_settings")
		TradeMappingCollection = db.Collection("trade_mappings")
		NFCTagCollection = db.Collection("nfc_tags")
		GeneratedReportCollection = db.Collection("generated_reports")
		SiteOrientationCollection = db.Collection("site_orientations")
		SafetyMeetingCollection = db.Collection("safety_meetings")
		DOBDailyLogCollection = db.Collection("dob_daily_logs")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns an arbitrary collection from the active database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
