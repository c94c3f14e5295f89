package postgres

// Static SQL kept together so the schema contract is visible in one place.
const (
	insertProduct = `
		INSERT INTO products (sku, name, price, currency, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	findProductByID = `
		SELECT id, sku, name, price, currency, description, created_at, updated_at
		FROM products
		WHERE id = $1`

	findProductBySKU = `
		SELECT id, sku, name, price, currency, description, created_at, updated_at
		FROM products
		WHERE sku = $1`

	productExistsBySKU = `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`

	listProducts = `
		SELECT id, sku, name, price, currency, description, created_at, updated_at
		FROM products
		ORDER BY id`

	updateProductPrice = `
		UPDATE products
		SET price = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, sku, name, price, currency, description, created_at, updated_at`

	deleteProduct = `DELETE FROM products WHERE id = $1`

	idempotencyKeyExists = `
		SELECT EXISTS (
			SELECT 1 FROM idempotency_keys WHERE idempotency_key = $1 AND owner = $2
		)`

	insertIdempotencyKey = `
		INSERT INTO idempotency_keys (idempotency_key, owner, http_method, path, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	findUserByUsername = `
		SELECT id, username, password, enabled
		FROM users
		WHERE username = $1`

	findUserRoles = `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`
)
