package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/adisyon/internal/models"
)

const (
	hotDrinks  = "Sıcak İçecekler"
	coldDrinks = "Soğuk İçecekler"
	desserts   = "Tatlılar"
	food       = "Yiyecekler"
)

func item(id int64, name string, price int64, category string, stock int) models.MenuItem {
	return models.MenuItem{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Category: category,
		Stock:    stock,
	}
}

// DefaultMenu returns the menu a fresh installation starts with.
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		item(1, "Türk Kahvesi", 45, hotDrinks, 100),
		item(2, "Filtre Kahve", 60, hotDrinks, 50),
		item(3, "Latte", 70, hotDrinks, 40),
		item(4, "Çay", 25, hotDrinks, 500),
		item(5, "Bitki Çayı", 40, hotDrinks, 60),
		item(6, "Espresso", 40, hotDrinks, 80),
		item(16, "Cappuccino", 70, hotDrinks, 35),
		item(17, "Americano", 55, hotDrinks, 45),
		item(18, "Sıcak Çikolata", 80, hotDrinks, 30),
		item(19, "Salep", 80, hotDrinks, 25),
		item(20, "Flat White", 75, hotDrinks, 20),
		item(21, "White Chocolate Mocha", 85, hotDrinks, 15),
		item(22, "Chai Tea Latte", 80, hotDrinks, 20),

		item(7, "Soğuk Kahve", 75, coldDrinks, 50),
		item(8, "Limonata", 65, coldDrinks, 30),
		item(9, "Taze Sıkma Portakal", 80, coldDrinks, 20),
		item(10, "Su", 15, coldDrinks, 200),
		item(23, "Ice Americano", 65, coldDrinks, 50),
		item(24, "Ice Latte", 75, coldDrinks, 50),
		item(25, "Soda", 25, coldDrinks, 100),
		item(26, "Ayran", 30, coldDrinks, 40),
		item(27, "Milkshake (Çikolata)", 95, coldDrinks, 15),
		item(28, "Milkshake (Çilek)", 95, coldDrinks, 15),
		item(29, "Churchill", 40, coldDrinks, 30),
		item(30, "Cool Lime", 70, coldDrinks, 20),

		item(11, "Cheesecake", 110, desserts, 12),
		item(12, "Brownie", 95, desserts, 10),
		item(13, "Tiramisu", 105, desserts, 8),
		item(31, "San Sebastian", 130, desserts, 5),
		item(32, "Magnolia", 90, desserts, 15),
		item(33, "Waffle", 150, desserts, 20),
		item(34, "Sufle", 100, desserts, 10),
		item(35, "Profiterol", 95, desserts, 12),
		item(36, "Trileçe", 85, desserts, 10),

		item(14, "Sandviç", 120, food, 25),
		item(15, "Tost", 90, food, 30),
		item(37, "Hamburger", 180, food, 15),
		item(38, "Cheeseburger", 200, food, 12),
		item(39, "Patates Kızartması", 70, food, 40),
		item(40, "Pizza (Karışık)", 220, food, 10),
		item(41, "Menemen", 110, food, 20),
		item(42, "Kahvaltı Tabağı", 250, food, 15),
		item(43, "Serpme Kahvaltı (2 Kişilik)", 600, food, 5),
	}
}
