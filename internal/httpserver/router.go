package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tunedesk/internal/httpserver/handlers"
	"tunedesk/internal/services"
	"tunedesk/internal/storage"
)

func NewRouter(db *gorm.DB, st *storage.Store, lg *zap.SugaredLogger) http.Handler {
	cars := services.NewCarService(db)
	infos := services.NewCarInformationService(db)
	customers := services.NewCustomerService(db)
	tags := services.NewTagService(db)
	users := services.NewUserService(db)
	orders := services.NewOrderService(db)
	binaries := services.NewBinaryService(db)
	intake := services.NewIntakeService(db)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Post("/v1/cars", handlers.CreateCar(cars, lg))
	r.Get("/v1/cars", handlers.ListCars(cars, lg))
	r.Get("/v1/cars/count", handlers.CarCount(cars, lg))
	r.Get("/v1/cars/{id}", handlers.GetCar(cars, lg))
	r.Put("/v1/cars/{id}", handlers.UpdateCar(cars, lg))
	r.Delete("/v1/cars/{id}", handlers.DeleteCar(cars, lg))
	r.Get("/v1/cars/{id}/information", handlers.CarInformationForCar(infos, lg))
	r.Get("/v1/cars/{id}/binaries", handlers.BinariesForCar(binaries, lg))

	r.Post("/v1/car-information", handlers.CreateCarInformation(infos, lg))
	r.Get("/v1/car-information", handlers.ListCarInformation(infos, lg))
	r.Get("/v1/car-information/count", handlers.CarInformationCount(infos, lg))
	r.Get("/v1/car-information/{id}", handlers.GetCarInformation(infos, lg))
	r.Put("/v1/car-information/{id}", handlers.UpdateCarInformation(infos, lg))
	r.Delete("/v1/car-information/{id}", handlers.DeleteCarInformation(infos, lg))

	r.Post("/v1/customers", handlers.CreateCustomer(customers, lg))
	r.Get("/v1/customers", handlers.ListCustomers(customers, lg))
	r.Get("/v1/customers/count", handlers.CustomerCount(customers, lg))
	r.Get("/v1/customers/{id}", handlers.GetCustomer(customers, lg))
	r.Put("/v1/customers/{id}", handlers.UpdateCustomer(customers, lg))
	r.Delete("/v1/customers/{id}", handlers.DeleteCustomer(customers, lg))

	r.Post("/v1/tags", handlers.CreateTag(tags, lg))
	r.Get("/v1/tags", handlers.ListTags(tags, lg))
	r.Get("/v1/tags/count", handlers.TagCount(tags, lg))
	r.Get("/v1/tags/{id}", handlers.GetTag(tags, lg))
	r.Put("/v1/tags/{id}", handlers.UpdateTag(tags, lg))
	r.Delete("/v1/tags/{id}", handlers.DeleteTag(tags, lg))

	r.Post("/v1/users", handlers.CreateUser(users, lg))
	r.Get("/v1/users", handlers.ListUsers(users, lg))
	r.Get("/v1/users/count", handlers.UserCount(users, lg))
	r.Get("/v1/users/{id}", handlers.GetUser(users, lg))
	r.Put("/v1/users/{id}", handlers.UpdateUser(users, lg))
	r.Delete("/v1/users/{id}", handlers.DeleteUser(users, lg))

	r.Post("/v1/orders", handlers.CreateOrder(orders, lg))
	r.Get("/v1/orders", handlers.ListOrders(orders, lg))
	r.Get("/v1/orders/recent", handlers.RecentOrders(orders, lg))
	r.Get("/v1/orders/count", handlers.OrderCount(orders, lg))
	r.Get("/v1/orders/{id}", handlers.GetOrder(orders, lg))
	r.Put("/v1/orders/{id}", handlers.UpdateOrder(orders, lg))
	r.Delete("/v1/orders/{id}", handlers.DeleteOrder(orders, lg))

	r.Post("/v1/binaries", handlers.CreateBinary(binaries, lg))
	r.Get("/v1/binaries", handlers.ListBinaries(binaries, lg))
	r.Get("/v1/binaries/count", handlers.BinaryCount(binaries, lg))
	r.Get("/v1/binaries/{id}", handlers.GetBinary(binaries, lg))
	r.Put("/v1/binaries/{id}", handlers.UpdateBinary(binaries, lg))
	r.Delete("/v1/binaries/{id}", handlers.DeleteBinary(binaries, lg))

	r.Post("/v1/intake", handlers.CreateIntake(intake, lg))
	r.Post("/v1/uploads", handlers.UploadFile(st, lg))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
