package inventoryRepository

const (
	queryCreateProduct = `
		INSERT INTO products (
			id,
			franchise_id,
			sku,
			name,
			description,
			category,
			brand,
			price,
			stock,
			min_stock,
			photo_url,
			created_at,
			updated_at
		) VALUES (
			:id,
			:franchise_id,
			:sku,
			:name,
			:description,
			:category,
			:brand,
			:price,
			:stock,
			:min_stock,
			:photo_url,
			:created_at,
			:updated_at
		)
	`

	queryGetProductByID = `
		SELECT
			id,
			franchise_id,
			sku,
			name,
			description,
			category,
			brand,
			price,
			stock,
			min_stock,
			photo_url,
			created_at,
			updated_at
		FROM products
		WHERE id = :id
	`

	queryGetProductBySKU = `
		SELECT
			id,
			franchise_id,
			sku,
			name,
			description,
			category,
			brand,
			price,
			stock,
			min_stock,
			photo_url,
			created_at,
			updated_at
		FROM products
		WHERE franchise_id = :franchise_id AND sku = :sku
	`

	queryGetProductsByFranchise = `
		SELECT
			id,
			franchise_id,
			sku,
			name,
			description,
			category,
			brand,
			price,
			stock,
			min_stock,
			photo_url,
			created_at,
			updated_at
		FROM products
		WHERE franchise_id = :franchise_id
		ORDER BY name
	`

	queryGetLowStockProducts = `
		SELECT
			id,
			franchise_id,
			sku,
			name,
			description,
			category,
			brand,
			price,
			stock,
			min_stock,
			photo_url,
			created_at,
			updated_at
		FROM products
		WHERE franchise_id = :franchise_id
		  AND stock < min_stock
		ORDER BY stock
	`

	queryUpdateProduct = `
		UPDATE products
		SET
			name = :name,
			description = :description,
			brand = :brand,
			price = :price,
			min_stock = :min_stock,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateProductStock = `
		UPDATE products
		SET
			stock = stock + :delta,
			updated_at = :updated_at
		WHERE id = :id AND stock + :delta >= 0
	`

	queryUpdateProductPhoto = `
		UPDATE products
		SET
			photo_url = :photo_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateMovement = `
		INSERT INTO stock_movements (
			id,
			product_id,
			user_id,
			type,
			quantity,
			reason,
			created_at
		) VALUES (
			:id,
			:product_id,
			:user_id,
			:type,
			:quantity,
			:reason,
			:created_at
		)
	`

	queryGetMovementsByProduct = `
		SELECT
			id,
			product_id,
			user_id,
			type,
			quantity,
			reason,
			created_at
		FROM stock_movements
		WHERE product_id = :product_id
		ORDER BY created_at DESC
	`
)
