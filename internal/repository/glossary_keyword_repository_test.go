// internal/repository/glossary_keyword_repository_test.go
package repository

import (
	"context"
	"testing"

	"glossary_console/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupKeywordTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// テストごとに独立したインメモリDB
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.GlossaryTask{}, &model.GlossaryKeyword{}))
	return db
}

func newTestTask(name string) *model.GlossaryTask {
	return &model.GlossaryTask{
		TaskID:          uuid.New(),
		Name:            name,
		InstructionEN:   "Translate the text.",
		ContextTemplate: "Focus on: {keyword}",
		IsActive:        true,
	}
}

// キーワード名の一意性はタスク内スコープ。
// 別タスクであれば同名キーワードを作成できる。
func Test_gormGlossaryKeywordRepository_NameUniquePerTask(t *testing.T) {
	ctx := context.Background()
	db := setupKeywordTestDB(t)
	taskRepo := NewGormGlossaryTaskRepository()
	keywordRepo := NewGormGlossaryKeywordRepository()

	taskA := newTestTask("Contract Translation")
	taskB := newTestTask("Review Summary")
	require.NoError(t, taskRepo.Create(ctx, db, taskA))
	require.NoError(t, taskRepo.Create(ctx, db, taskB))

	t.Run("タスクAに作成できる", func(t *testing.T) {
		err := keywordRepo.Create(ctx, db, &model.GlossaryKeyword{
			KeywordID: uuid.New(),
			TaskID:    taskA.TaskID,
			Name:      "Legal",
			IsActive:  true,
		})
		require.NoError(t, err)
	})

	t.Run("別タスクなら同名でも作成できる", func(t *testing.T) {
		err := keywordRepo.Create(ctx, db, &model.GlossaryKeyword{
			KeywordID: uuid.New(),
			TaskID:    taskB.TaskID,
			Name:      "Legal",
			IsActive:  true,
		})
		require.NoError(t, err)

		keywords, err := keywordRepo.ListByTask(ctx, db, taskB.TaskID, false)
		require.NoError(t, err)
		require.Len(t, keywords, 1)
		assert.Equal(t, "Legal", keywords[0].Name)
	})

	t.Run("同一タスク内は大文字小文字を区別せず一意制約違反", func(t *testing.T) {
		err := keywordRepo.Create(ctx, db, &model.GlossaryKeyword{
			KeywordID: uuid.New(),
			TaskID:    taskA.TaskID,
			Name:      "LEGAL",
			IsActive:  true,
		})
		require.Error(t, err)
	})
}
