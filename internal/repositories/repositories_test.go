package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sakmpar/social-blog/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{},
		&models.Share{}, &models.Category{}, &models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username, Email: username + "@example.com",
		PasswordHash: "x", FullName: "Test " + username, IsActive: true,
	}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPost(t *testing.T, repo PostRepository, userID uint, title, status string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title: title, Content: "Content of " + title, Tags: "go,testing",
		Category: "General", Status: status, UserID: userID, PublishedAt: time.Now(),
	}
	if err := repo.CreatePost(post); err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

func TestUserRepository(t *testing.T) {
	repo := NewPostgresUserRepository(newTestDB(t))

	alice := createUser(t, repo, "alice")
	bob := createUser(t, repo, "bob")

	got, err := repo.GetUserByUsername("alice")
	if err != nil || got.ID != alice.ID {
		t.Errorf("GetUserByUsername: got %v, err %v", got, err)
	}
	if _, err := repo.GetUserByUsername("nobody"); err == nil {
		t.Error("expected error for unknown username")
	}

	byEmail, err := repo.GetUserByEmail("bob@example.com")
	if err != nil || byEmail.ID != bob.ID {
		t.Errorf("GetUserByEmail: got %v, err %v", byEmail, err)
	}

	users, err := repo.GetUsersByIDs([]uint{alice.ID, bob.ID, 999})
	if err != nil {
		t.Fatalf("GetUsersByIDs failed: %v", err)
	}
	if len(users) != 2 || users[alice.ID].Username != "alice" {
		t.Errorf("unexpected user map: %v", users)
	}

	empty, err := repo.GetUsersByIDs(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("GetUsersByIDs(nil): got %v, err %v", empty, err)
	}

	alice.Bio = "updated"
	if err := repo.UpdateUser(alice); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	reloaded, _ := repo.GetUserByID(alice.ID)
	if reloaded.Bio != "updated" {
		t.Errorf("bio not persisted: %q", reloaded.Bio)
	}

	if count, _ := repo.CountUsers(); count != 2 {
		t.Errorf("expected 2 users, got %d", count)
	}
}

func TestPostRepositoryPaginationAndStatus(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)

	author := createUser(t, users, "author")
	for i := 0; i < 5; i++ {
		post := createPost(t, posts, author.ID, fmt.Sprintf("Post %d", i), models.PostStatusPublished)
		// Distinct timestamps for a stable newest-first order.
		db.Model(post).Update("created_at", time.Now().Add(time.Duration(i)*time.Minute))
	}
	createPost(t, posts, author.ID, "Hidden Draft", models.PostStatusDraft)

	page, total, err := posts.GetPublishedPosts(0, 3)
	if err != nil {
		t.Fatalf("GetPublishedPosts failed: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5 published, got %d", total)
	}
	if len(page) != 3 || page[0].Title != "Post 4" {
		t.Errorf("unexpected first page: %d posts, first %q", len(page), page[0].Title)
	}

	all, err := posts.GetAllPublishedPosts()
	if err != nil || len(all) != 5 {
		t.Errorf("GetAllPublishedPosts: %d posts, err %v", len(all), err)
	}
	for _, p := range all {
		if p.Status != models.PostStatusPublished {
			t.Errorf("draft leaked into published set: %q", p.Title)
		}
	}

	if count, _ := posts.CountPostsByUser(author.ID); count != 6 {
		t.Errorf("expected 6 posts by author, got %d", count)
	}
}

func TestPostRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	author := createUser(t, users, "author")

	golang := &models.Post{Title: "Golang Concurrency", Content: "goroutines and channels", Tags: "programming", Status: models.PostStatusPublished, UserID: author.ID}
	cooking := &models.Post{Title: "Weeknight Cooking", Content: "simple recipes", Tags: "food,kitchen", Status: models.PostStatusPublished, UserID: author.ID}
	draft := &models.Post{Title: "Golang Draft", Content: "unfinished", Status: models.PostStatusDraft, UserID: author.ID}
	for _, p := range []*models.Post{golang, cooking, draft} {
		if err := posts.CreatePost(p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	results, total, err := posts.SearchPosts("GOLANG", 0, 10)
	if err != nil {
		t.Fatalf("SearchPosts failed: %v", err)
	}
	if total != 1 || len(results) != 1 || results[0].ID != golang.ID {
		t.Errorf("case-insensitive title search failed: total %d, results %v", total, results)
	}

	if _, total, _ := posts.SearchPosts("kitchen", 0, 10); total != 1 {
		t.Errorf("tag search failed: total %d", total)
	}
	if _, total, _ := posts.SearchPosts("recipes", 0, 10); total != 1 {
		t.Errorf("content search failed: total %d", total)
	}
}

func TestPostRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)
	comments := NewPostgresCommentRepository(db)
	shares := NewPostgresShareRepository(db)

	author := createUser(t, users, "author")
	reader := createUser(t, users, "reader")
	post := createPost(t, posts, author.ID, "Doomed Post", models.PostStatusPublished)

	if err := likes.CreateLike(&models.Like{UserID: reader.ID, PostID: post.ID}); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := comments.CreateComment(&models.Comment{Content: "hi", UserID: reader.ID, PostID: post.ID, IsActive: true}); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if err := shares.CreateShare(&models.Share{UserID: reader.ID, PostID: post.ID, Platform: "twitter"}); err != nil {
		t.Fatalf("share: %v", err)
	}

	if err := posts.DeletePost(post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	if count, _ := likes.CountLikesByPostID(post.ID); count != 0 {
		t.Errorf("likes not cascaded: %d", count)
	}
	if count, _ := comments.CountCommentsByPostID(post.ID); count != 0 {
		t.Errorf("comments not cascaded: %d", count)
	}
	if count, _ := shares.CountSharesByPostID(post.ID); count != 0 {
		t.Errorf("shares not cascaded: %d", count)
	}

	if err := posts.DeletePost(post.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound on double delete, got %v", err)
	}
}

func TestPostRepositorySetFeatured(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	author := createUser(t, users, "author")
	post := createPost(t, posts, author.ID, "Headline", models.PostStatusPublished)

	if err := posts.SetFeatured(post.ID, true); err != nil {
		t.Fatalf("SetFeatured failed: %v", err)
	}
	reloaded, _ := posts.GetPostByID(post.ID)
	if !reloaded.IsFeatured {
		t.Error("post not featured")
	}

	if err := posts.SetFeatured(999, true); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLikeRepositoryUniqueness(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)

	reader := createUser(t, users, "reader")
	post := createPost(t, posts, reader.ID, "Likeable", models.PostStatusPublished)

	if err := likes.CreateLike(&models.Like{UserID: reader.ID, PostID: post.ID}); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if err := likes.CreateLike(&models.Like{UserID: reader.ID, PostID: post.ID}); err == nil {
		t.Error("duplicate like should violate the unique index")
	}

	liked, err := likes.HasUserLikedPost(post.ID, reader.ID)
	if err != nil || !liked {
		t.Errorf("HasUserLikedPost: liked %v, err %v", liked, err)
	}

	if err := likes.DeleteLike(post.ID, reader.ID); err != nil {
		t.Fatalf("DeleteLike failed: %v", err)
	}
	if liked, _ := likes.HasUserLikedPost(post.ID, reader.ID); liked {
		t.Error("like not removed")
	}
	if count, _ := likes.CountLikesByPostID(post.ID); count != 0 {
		t.Errorf("expected 0 likes, got %d", count)
	}
}

func TestCommentRepositorySoftDeleteAndRecent(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	comments := NewPostgresCommentRepository(db)

	reader := createUser(t, users, "reader")
	post := createPost(t, posts, reader.ID, "Discussed", models.PostStatusPublished)

	var ids []uint
	for i := 0; i < 5; i++ {
		comment := &models.Comment{Content: fmt.Sprintf("comment %d", i), UserID: reader.ID, PostID: post.ID, IsActive: true}
		if err := comments.CreateComment(comment); err != nil {
			t.Fatalf("create comment: %v", err)
		}
		db.Model(comment).Update("created_at", time.Now().Add(time.Duration(i)*time.Minute))
		ids = append(ids, comment.ID)
	}

	recent, err := comments.GetRecentCommentsByPostID(post.ID, 3)
	if err != nil {
		t.Fatalf("GetRecentCommentsByPostID failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Content != "comment 4" {
		t.Errorf("unexpected recent comments: %v", recent)
	}

	if err := comments.DeactivateComment(ids[4]); err != nil {
		t.Fatalf("DeactivateComment failed: %v", err)
	}
	active, err := comments.GetCommentsByPostID(post.ID)
	if err != nil {
		t.Fatalf("GetCommentsByPostID failed: %v", err)
	}
	if len(active) != 4 {
		t.Errorf("expected 4 active comments, got %d", len(active))
	}
	for _, c := range active {
		if c.ID == ids[4] {
			t.Error("deactivated comment still listed")
		}
	}

	if count, _ := comments.CountCommentsByPostID(post.ID); count != 4 {
		t.Errorf("count should exclude deactivated comments, got %d", count)
	}
}

func TestShareRepositoryPerPlatform(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	shares := NewPostgresShareRepository(db)

	reader := createUser(t, users, "reader")
	post := createPost(t, posts, reader.ID, "Shared", models.PostStatusPublished)

	if err := shares.CreateShare(&models.Share{UserID: reader.ID, PostID: post.ID, Platform: "twitter"}); err != nil {
		t.Fatalf("share failed: %v", err)
	}
	if err := shares.CreateShare(&models.Share{UserID: reader.ID, PostID: post.ID, Platform: "facebook"}); err != nil {
		t.Fatalf("second platform share failed: %v", err)
	}
	if err := shares.CreateShare(&models.Share{UserID: reader.ID, PostID: post.ID, Platform: "twitter"}); err == nil {
		t.Error("duplicate platform share should violate the unique index")
	}

	if _, err := shares.GetShare(post.ID, reader.ID, "twitter"); err != nil {
		t.Errorf("GetShare failed: %v", err)
	}
	if _, err := shares.GetShare(post.ID, reader.ID, "linkedin"); err == nil {
		t.Error("expected error for unknown platform share")
	}
	if count, _ := shares.CountSharesByPostID(post.ID); count != 2 {
		t.Errorf("expected 2 shares, got %d", count)
	}
}

func TestNotificationRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	notifications := NewPostgresNotificationRepository(db)

	actor := createUser(t, users, "actor")
	recipient := createUser(t, users, "recipient")

	n := &models.Notification{
		Type: models.NotificationTypeLike, ActorID: actor.ID,
		RecipientID: recipient.ID, PostID: 1, Message: "actor liked your post",
	}
	if err := notifications.CreateNotification(n); err != nil {
		t.Fatalf("create notification: %v", err)
	}

	list, err := notifications.GetNotificationsByRecipient(recipient.ID, 10)
	if err != nil || len(list) != 1 {
		t.Fatalf("GetNotificationsByRecipient: %d, err %v", len(list), err)
	}
	if unread, _ := notifications.CountUnread(recipient.ID); unread != 1 {
		t.Errorf("expected 1 unread, got %d", unread)
	}

	// A different user cannot acknowledge someone else's notification.
	if err := notifications.MarkAsRead(n.ID, actor.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound for wrong recipient, got %v", err)
	}

	if err := notifications.MarkAsRead(n.ID, recipient.ID); err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if unread, _ := notifications.CountUnread(recipient.ID); unread != 0 {
		t.Errorf("expected 0 unread after read, got %d", unread)
	}
}

func TestCategoryRepository(t *testing.T) {
	repo := NewPostgresCategoryRepository(newTestDB(t))

	for _, name := range []string{"Technology", "General"} {
		err := repo.CreateCategory(&models.Category{Name: name, Slug: strings.ToLower(name)})
		if err != nil {
			t.Fatalf("create category %s: %v", name, err)
		}
	}

	categories, err := repo.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "General" {
		t.Errorf("categories should sort by name: %v", categories)
	}

	tech, err := repo.GetCategoryBySlug("technology")
	if err != nil || tech.Name != "Technology" {
		t.Errorf("GetCategoryBySlug: got %v, err %v", tech, err)
	}
}

func TestStatsRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)
	stats := NewPostgresStatsRepository(db)

	author := createUser(t, users, "author")
	manual := createPost(t, posts, author.ID, "Manual", models.PostStatusPublished)
	auto := &models.Post{Title: "Auto", Content: "c", Status: models.PostStatusPublished, IsAutoGenerated: true, UserID: author.ID}
	if err := posts.CreatePost(auto); err != nil {
		t.Fatalf("create auto post: %v", err)
	}
	if err := likes.CreateLike(&models.Like{UserID: author.ID, PostID: manual.ID}); err != nil {
		t.Fatalf("like: %v", err)
	}

	got, err := stats.GetBlogStats()
	if err != nil {
		t.Fatalf("GetBlogStats failed: %v", err)
	}
	if got.TotalPosts != 2 || got.TotalUsers != 1 || got.TotalLikes != 1 {
		t.Errorf("unexpected totals: %+v", got)
	}
	if got.AutoGeneratedPosts != 1 || got.UserPosts != 1 {
		t.Errorf("unexpected post split: %+v", got)
	}
}
