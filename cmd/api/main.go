package main

import (
	_ "bemu_storefront/docs"
	"bemu_storefront/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bemu Storefront API
// @version         1.0
// @description     3D-print storefront: Airtable catalog, Organiziro drawer calculator, carts and checkout (Stripe, Mercado Pago).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
