// server/internal/database/bid_store.go
package database

import (
	"context"
	"time"

	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BidStore là bản MongoDB của bidding.Store.
type BidStore struct {
	DB *mongo.Database
}

func NewBidStore(db *mongo.Database) *BidStore {
	return &BidStore{DB: db}
}

func (s *BidStore) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.Collection("jobs").FindOne(ctx, bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, bidding.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *BidStore) GetBid(ctx context.Context, bidID string) (*models.Bid, error) {
	var bid models.Bid
	err := s.DB.Collection("bids").FindOne(ctx, bson.M{"bidID": bidID}).Decode(&bid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, bidding.ErrNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (s *BidStore) InsertBid(ctx context.Context, bid *models.Bid) error {
	result, err := s.DB.Collection("bids").InsertOne(ctx, bid)
	if err != nil {
		// Unique index (jobID, transporterID) chặn bid trùng, kể cả khi
		// hai request chạy song song.
		if mongo.IsDuplicateKeyError(err) {
			return bidding.ErrDuplicateBid
		}
		return err
	}
	bid.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *BidStore) UpdateBid(ctx context.Context, bid *models.Bid) error {
	update := bson.M{"$set": bson.M{
		"amount":            bid.Amount,
		"message":           bid.Message,
		"estimatedDelivery": bid.EstimatedDelivery,
		"updatedAt":         bid.UpdatedAt,
	}}
	_, err := s.DB.Collection("bids").UpdateOne(ctx, bson.M{"bidID": bid.BidID}, update)
	return err
}

func (s *BidStore) SetBidStatus(ctx context.Context, bidID string, status models.BidStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err := s.DB.Collection("bids").UpdateOne(ctx, bson.M{"bidID": bidID}, update)
	return err
}

func (s *BidStore) RejectOtherPendingBids(ctx context.Context, jobID, acceptedBidID string) error {
	filter := bson.M{
		"jobID":  jobID,
		"bidID":  bson.M{"$ne": acceptedBidID},
		"status": models.BidPending,
	}
	update := bson.M{"$set": bson.M{"status": models.BidRejected, "updatedAt": time.Now()}}
	_, err := s.DB.Collection("bids").UpdateMany(ctx, filter, update)
	return err
}

func (s *BidStore) SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err := s.DB.Collection("jobs").UpdateOne(ctx, bson.M{"jobID": jobID}, update)
	return err
}

func (s *BidStore) AssignJob(ctx context.Context, jobID, transporterID, vehicleID string) error {
	set := bson.M{
		"status":        models.JobAssigned,
		"transporterID": transporterID,
		"updatedAt":     time.Now(),
	}
	if vehicleID != "" {
		set["vehicleID"] = vehicleID
	}
	_, err := s.DB.Collection("jobs").UpdateOne(ctx, bson.M{"jobID": jobID}, bson.M{"$set": set})
	return err
}

func (s *BidStore) ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: 1}})
	cursor, err := s.DB.Collection("bids").Find(ctx, bson.M{"jobID": jobID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bids []models.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, err
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}

func (s *BidStore) ListBidsByTransporter(ctx context.Context, transporterID string) ([]models.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.DB.Collection("bids").Find(ctx, bson.M{"transporterID": transporterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bids []models.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, err
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}

// WithTransaction chạy fn trong một session transaction của Mongo.
// Driver tự rollback khi fn trả lỗi.
func (s *BidStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.DB.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
