package models

// All lists the models in parent->child order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Room{},
		&Customer{},
		&Booking{},
		&Service{},
	}
}
