package models

// All lists every persistence model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&OTPModel{},
		&PlanModel{},
		&SubscriptionModel{},
		&CategoryModel{},
		&StoreModel{},
		&StoreCategoryModel{},
		&ProductModel{},
		&ServiceModel{},
		&ConsultationModel{},
		&BlogModel{},
	}
}
