package repository

import (
	"bytes"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssetRepo handles GridFS storage of report assets
type AssetRepo interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type assetRepo struct {
	db         *mongo.Database
	bucketName string
}

// NewAssetRepo creates a new asset repository
func NewAssetRepo(db *mongo.Database) AssetRepo {
	return &assetRepo{
		db:         db,
		bucketName: "assets",
	}
}

// bucket opens a bucket for one call; deadlines are per-bucket state.
func (r *assetRepo) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(r.db, options.GridFSBucket().SetName(r.bucketName))
	if err != nil {
		return nil, err
	}
	if dl, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(dl); err != nil {
			return nil, err
		}
		if err := b.SetWriteDeadline(dl); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *assetRepo) Put(ctx context.Context, key, contentType string, data []byte) error {
	b, err := r.bucket(ctx)
	if err != nil {
		return err
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	id, err := b.UploadFromStream(key, bytes.NewReader(data), opts)
	if err != nil {
		return err
	}

	// Keep only the newest revision
	return r.deleteRevisions(ctx, b, key, id)
}

func (r *assetRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.bucket(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	_, err = b.DownloadToStreamByName(key, &buf)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *assetRepo) Delete(ctx context.Context, key string) error {
	b, err := r.bucket(ctx)
	if err != nil {
		return err
	}
	return r.deleteRevisions(ctx, b, key, primitive.NilObjectID)
}

func (r *assetRepo) deleteRevisions(ctx context.Context, b *gridfs.Bucket, key string, keep primitive.ObjectID) error {
	cursor, err := b.FindContext(ctx, bson.M{"filename": key})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return err
	}
	for _, f := range files {
		if f.ID == keep {
			continue
		}
		if err := b.DeleteContext(ctx, f.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return err
		}
	}
	return nil
}
