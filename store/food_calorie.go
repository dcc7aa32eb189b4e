package store

// FoodCalorie is one row of the food calorie lookup table, loaded from CSV at
// startup and folded into the chatbot retrieval corpus.
type FoodCalorie struct {
	ID   int32
	Food string
	// Calories keeps the CSV representation verbatim (some rows carry units).
	Calories string
}

type FindFoodCalorie struct {
	Food *string
}
