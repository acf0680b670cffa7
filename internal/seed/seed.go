// Package seed populates a development database with demo data.
package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	demoUserCount     = 12
	demoPostsPerUser  = 4
	demoPassword      = "ripple-demo-pass"
	demoFollowsFanout = 4
)

// DemoData seeds a deterministic set of users, profiles, posts, follows,
// likes and comments. Idempotent: an already-seeded database is left alone.
func DemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Println("seed: database already has users, skipping demo data")
		return nil
	}

	gofakeit.Seed(42)

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]*models.User, 0, demoUserCount)
		for i := 0; i < demoUserCount; i++ {
			user := &models.User{
				Username: fmt.Sprintf("%s_%d", gofakeit.Username(), i),
				Email:    gofakeit.Email(),
				Password: string(hashed),
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create demo user: %w", err)
			}
			users = append(users, user)

			profile := &models.Profile{
				UserID: user.ID,
				Bio:    gofakeit.Sentence(8),
				Avatar: gofakeit.ImageURL(128, 128),
			}
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("create demo profile: %w", err)
			}
		}

		posts := make([]*models.Post, 0, demoUserCount*demoPostsPerUser)
		for _, user := range users {
			for i := 0; i < demoPostsPerUser; i++ {
				post := &models.Post{
					UserID:  user.ID,
					Content: gofakeit.Paragraph(1, 2, 10, " "),
				}
				if i%3 == 0 {
					post.ImageURL = gofakeit.ImageURL(640, 480)
				}
				if err := tx.Create(post).Error; err != nil {
					return fmt.Errorf("create demo post: %w", err)
				}
				posts = append(posts, post)
			}
		}

		// Each user follows the next few users, wrapping around.
		for i, follower := range users {
			for j := 1; j <= demoFollowsFanout; j++ {
				target := users[(i+j)%len(users)]
				var targetProfile models.Profile
				if err := tx.Where("user_id = ?", target.ID).First(&targetProfile).Error; err != nil {
					return fmt.Errorf("find demo profile: %w", err)
				}
				edge := models.ProfileFollower{
					ProfileID: targetProfile.ID,
					UserID:    follower.ID,
				}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
					return fmt.Errorf("create demo follow: %w", err)
				}
			}
		}

		for i, post := range posts {
			liker := users[(i*3+1)%len(users)]
			like := models.Like{UserID: liker.ID, PostID: post.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("create demo like: %w", err)
			}

			if i%2 == 0 {
				commenter := users[(i*5+2)%len(users)]
				comment := models.Comment{
					UserID: commenter.ID,
					PostID: post.ID,
					Text:   gofakeit.Sentence(12),
				}
				if err := tx.Create(&comment).Error; err != nil {
					return fmt.Errorf("create demo comment: %w", err)
				}
			}
		}

		log.Printf("seed: created %d users, %d posts", len(users), len(posts))
		return nil
	})
}
