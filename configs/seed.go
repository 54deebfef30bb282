package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/entity"
)

// SeedStore creates the initial store-staff account.
func SeedStore(db *gorm.DB, cfg *Config) error {
	if cfg.StoreEmail == "" || cfg.StorePassword == "" {
		log.Println("skip seeding store account: missing STORE_EMAIL/STORE_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.StoreEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.StorePassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	store := entity.User{
		Email:    cfg.StoreEmail,
		Name:     "店舗スタッフ",
		Password: string(hash),
		Role:     entity.RoleStore,
		IsActive: true,
	}
	return db.Create(&store).Error
}

// SeedMenus inserts the sample bento catalog for development.
func SeedMenus(db *gorm.DB) error {
	menus := []entity.Menu{
		{Name: "唐揚げ弁当", Description: "ジューシーな唐揚げがメインの人気弁当。", Price: 500, Category: entity.CategoryMeat, IsAvailable: true},
		{Name: "焼肉弁当", Description: "特製タレの焼肉がたっぷり。ボリューム満点。", Price: 700, Category: entity.CategoryMeat, IsAvailable: true},
		{Name: "鮭弁当", Description: "脂の乗った美味しい鮭。塩加減が絶妙。", Price: 600, Category: entity.CategoryFish, IsAvailable: true},
		{Name: "野菜炒め弁当", Description: "新鮮な野菜をシャキシャキに炒めました。", Price: 450, Category: entity.CategoryVegetable, IsAvailable: true},
		{Name: "ハンバーグ弁当", Description: "ジューシーなハンバーグにデミグラスソース。", Price: 650, Category: entity.CategoryMeat, IsAvailable: true},
		{Name: "海老フライ弁当", Description: "プリプリの海老をサクサクの衣で。タルタルソース付き。", Price: 750, Category: entity.CategoryFish, IsAvailable: true},
		{Name: "チキン南蛮弁当", Description: "宮崎名物チキン南蛮。甘酢とタルタルが絶妙。", Price: 680, Category: entity.CategoryMeat, IsAvailable: true},
	}
	for _, m := range menus {
		if err := db.Where(entity.Menu{Name: m.Name}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	log.Println("sample menus seeded")
	return nil
}
