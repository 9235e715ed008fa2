// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"artfolio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder run.
type Options struct {
	NumUsers    int
	NumArtworks int
	ShouldClean bool
}

var tagPool = []string{
	"digitalart", "oilpainting", "watercolor", "sketch", "portrait",
	"landscape", "abstract", "pixelart", "conceptart", "illustration",
	"fanart", "charcoal", "inktober", "surrealism", "minimalism",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. All seed users share the
// password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Password: string(hashedPassword),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateArtwork constructs and persists a sample artwork for the given user
// with a realistic created_at spread over the last 90 days.
func (f *Factory) CreateArtwork(user *models.User, overrides ...func(*models.Artwork)) (*models.Artwork, error) {
	artwork := &models.Artwork{
		Title:    gofakeit.Sentence(4),
		Caption:  gofakeit.Paragraph(1, 2, 8, "\n"),
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		UserID:   user.ID,
	}

	daysBack := f.rnd.Intn(90)
	hoursBack := f.rnd.Intn(24)
	artwork.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(artwork)
	}

	if err := f.db.Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// tagArtwork links one to three random tags from the pool to the artwork.
func (f *Factory) tagArtwork(artwork *models.Artwork) error {
	n := 1 + f.rnd.Intn(3)
	for i := 0; i < n; i++ {
		tag := tagPool[f.rnd.Intn(len(tagPool))]
		hashtag := models.Hashtag{Tag: tag}
		if err := f.db.Where(models.Hashtag{Tag: tag}).FirstOrCreate(&hashtag).Error; err != nil {
			return err
		}
		link := models.ArtworkHashtag{ArtworkID: artwork.ID, HashtagID: hashtag.ID}
		if err := f.db.Where(link).FirstOrCreate(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed populates the database with a connected social graph: users, follow
// edges, artworks with tags, likes, saves and comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d artworks...", opts.NumUsers, opts.NumArtworks)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	// Follow mesh: each user follows a handful of others.
	for _, u := range users {
		for i := 0; i < 3+f.rnd.Intn(5); i++ {
			target := users[f.rnd.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			follow := models.Follow{FollowerID: u.ID, FolloweeID: target.ID}
			if err := db.Where(follow).FirstOrCreate(&follow).Error; err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
		}
	}
	log.Println("follow mesh created")

	artworks := make([]*models.Artwork, 0, opts.NumArtworks)
	for i := 0; i < opts.NumArtworks; i++ {
		owner := users[f.rnd.Intn(len(users))]
		artwork, err := f.CreateArtwork(owner)
		if err != nil {
			return fmt.Errorf("failed to create artwork: %w", err)
		}
		if err := f.tagArtwork(artwork); err != nil {
			return fmt.Errorf("failed to tag artwork: %w", err)
		}
		artworks = append(artworks, artwork)
	}
	log.Printf("%d artworks created", len(artworks))

	// Engagement: likes, saves and comments spread across the catalog.
	for _, a := range artworks {
		for i := 0; i < f.rnd.Intn(8); i++ {
			liker := users[f.rnd.Intn(len(users))]
			like := models.Like{UserID: liker.ID, ArtworkID: a.ID}
			if err := db.Where(models.Like{UserID: liker.ID, ArtworkID: a.ID}).FirstOrCreate(&like).Error; err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
		}
		for i := 0; i < f.rnd.Intn(3); i++ {
			saver := users[f.rnd.Intn(len(users))]
			save := models.Save{UserID: saver.ID, ArtworkID: a.ID}
			if err := db.Where(models.Save{UserID: saver.ID, ArtworkID: a.ID}).FirstOrCreate(&save).Error; err != nil {
				return fmt.Errorf("failed to create save: %w", err)
			}
		}
		for i := 0; i < f.rnd.Intn(4); i++ {
			commenter := users[f.rnd.Intn(len(users))]
			comment := models.Comment{
				Content:   gofakeit.Sentence(8),
				UserID:    commenter.ID,
				ArtworkID: a.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
	}
	log.Println("engagement created")

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, saves, follows, artwork_hashtags, hashtags, artworks, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
