// Package model holds the GORM table mappings.
package model

// All lists every table model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&FoodModel{},
		&LikedFoodModel{},
		&MealModel{},
		&MealItemModel{},
		&UserDeviceModel{},
	}
}
