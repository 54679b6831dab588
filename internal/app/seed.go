package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
)

type seedFile struct {
	Users []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"users"`
	Stores []struct {
		ID          string `json:"id"`
		OwnerUserID string `json:"owner_user_id"`
		Name        string `json:"name"`
	} `json:"stores"`
	Products []struct {
		ID         string `json:"id"`
		StoreID    string `json:"store_id"`
		Name       string `json:"name"`
		PriceMinor int64  `json:"price_minor"`
		Stock      *int32 `json:"stock"`
	} `json:"products"`
}

// loadSeed заводит пользователей, магазины и товары из JSON-файла.
// Уже существующие записи пропускаются, повторный запуск безопасен.
func loadSeed(ctx context.Context, path string, deps *runtimeDependencies, logger *log.Entry) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	created := 0
	for _, u := range seed.Users {
		if _, err := deps.userRepo.Get(ctx, u.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		if err := deps.userRepo.Create(ctx, domain.User{ID: u.ID, Name: u.Name, Email: u.Email}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		created++
	}

	for _, s := range seed.Stores {
		if _, err := deps.storeRepo.Get(ctx, s.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrStoreNotFound) {
			return fmt.Errorf("seed store %s: %w", s.ID, err)
		}
		if err := deps.storeRepo.Create(ctx, domain.Store{ID: s.ID, OwnerUserID: s.OwnerUserID, Name: s.Name}); err != nil {
			return fmt.Errorf("seed store %s: %w", s.ID, err)
		}
		created++
	}

	for _, p := range seed.Products {
		if _, err := deps.productRepo.Get(ctx, p.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
		product := domain.Product{ID: p.ID, StoreID: p.StoreID, Name: p.Name, PriceMinor: p.PriceMinor, Stock: p.Stock}
		if err := deps.productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
		created++
	}

	logger.WithFields(log.Fields{"path": path, "created": created}).Info("seed загружен")
	return nil
}
