package router

import (
	"travel_agency/constants"
	"travel_agency/handler"
	"travel_agency/middleware"
	"travel_agency/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/register", validate.RegisterCustomer(), handler.Register)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	customer := v1.Group("/customer", logger.New())
	customer.Put("/profile", middleware.Protected(), validate.EditProfile(), handler.EditProfile)
	customer.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	customer.Post("/filter", middleware.RequireCapability(constants.CAN_MANAGE_USERS), handler.GetCustomers)
	customer.Get("/:customerId", middleware.RequireCapability(constants.CAN_MANAGE_USERS), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Patch("/:customerId/level", middleware.RequireSuperAdmin(), validate.GetById("customerId"), validate.ChangeLevel(), handler.ChangeLevel)
	customer.Patch("/:customerId/active", middleware.RequireCapability(constants.CAN_MANAGE_USERS), validate.GetById("customerId"), handler.ToggleCustomerActive)

	tours := v1.Group("/tours", logger.New())
	// đặt route tĩnh trước :slug để fiber không nuốt path
	tours.Post("/filter", validate.FilterTour(), handler.GetTours)
	tours.Get("/categories", handler.GetTourCategories)
	tours.Get("/booking/:reference", middleware.OptionalJWT(), handler.GetBookingByReference)
	tours.Get("/my-bookings", middleware.Protected(), handler.MyBookings)
	tours.Get("/api/seats/:tourId", handler.GetTourSeats)
	tours.Post("/api/seats/:tourId/hold", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.HoldSeat)
	tours.Post("/api/seats/:tourId/release", handler.ReleaseSeat)
	tours.Post("/api/apply-discount", validate.ApplyDiscount(), handler.ApplyDiscount)
	tours.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_TOURS), validate.CreateTour(), handler.CreateTour)
	tours.Put("/:tourId", middleware.RequireCapability(constants.CAN_MANAGE_TOURS), validate.EditTour("tourId"), handler.EditTour)
	tours.Delete("/", middleware.RequireCapability(constants.CAN_MANAGE_TOURS), validate.Delete(), handler.DeleteTours)
	tours.Get("/:slug", handler.GetTourBySlug)
	tours.Get("/:slug/quick-booking", handler.QuickBookingQuote)
	tours.Post("/:slug/booking", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)

	// Realtime sơ đồ ghế
	v1.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	v1.Get("/ws/seats/:tourId", websocket.New(handler.SeatWebsocket))

	booking := v1.Group("/booking", logger.New())
	booking.Post("/filter", middleware.RequireCapability(constants.CAN_MANAGE_BOOKINGS), validate.FilterBooking(), handler.GetBookings)
	booking.Post("/:reference/cancel", middleware.Protected(), handler.CancelBooking)
	booking.Post("/:reference/confirm", middleware.RequireCapability(constants.CAN_MANAGE_BOOKINGS), handler.ConfirmBooking)
	booking.Post("/:reference/complete", middleware.RequireCapability(constants.CAN_MANAGE_BOOKINGS), handler.CompleteBooking)

	discount := v1.Group("/discount", logger.New())
	discount.Get("/public", handler.GetPublicDiscounts)
	discount.Get("/", middleware.RequireCapability(constants.CAN_MANAGE_DISCOUNT), handler.GetDiscounts)
	discount.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_DISCOUNT), validate.CreateDiscount(), handler.CreateDiscount)
	discount.Patch("/:discountId/toggle", middleware.RequireCapability(constants.CAN_MANAGE_DISCOUNT), validate.GetById("discountId"), handler.ToggleDiscount)
	discount.Delete("/", middleware.RequireCapability(constants.CAN_MANAGE_DISCOUNT), validate.Delete(), handler.DeleteDiscounts)

	transportation := v1.Group("/transportation", logger.New())
	transportation.Get("/", handler.GetTransportations)
	transportation.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_TOURS), validate.CreateTransportation(), handler.CreateTransportation)

	blog := v1.Group("/blog", logger.New())
	blog.Post("/filter", handler.GetPosts)
	blog.Get("/categories", handler.GetPostCategories)
	blog.Get("/:slug", handler.GetPostBySlug)
	blog.Post("/:slug/comments", middleware.OptionalJWT(), validate.CreateComment(), handler.CreateComment)
	blog.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.CreatePost(), handler.CreatePost)
	blog.Put("/:postId", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.GetById("postId"), validate.EditPost(), handler.EditPost)
	blog.Delete("/", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.Delete(), handler.DeletePosts)
	blog.Patch("/comments/:commentId/approve", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.GetById("commentId"), handler.ApproveComment)

	page := v1.Group("/pages", logger.New())
	page.Get("/menu", handler.GetMenuPages)
	page.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.CreatePage(), handler.CreatePage)
	page.Put("/:pageId", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.GetById("pageId"), validate.EditPage(), handler.EditPage)
	page.Delete("/", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.Delete(), handler.DeletePages)
	page.Get("/:slug", middleware.OptionalJWT(), handler.GetPageBySlug)

	destination := v1.Group("/destinations", logger.New())
	destination.Get("/", handler.GetDestinations)
	destination.Post("/", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.CreateDestination(), handler.CreateDestination)
	destination.Get("/:slug", handler.GetDestinationBySlug)

	website := v1.Group("/website", logger.New())
	website.Post("/contact", validate.CreateContact(), handler.CreateContact)
	website.Get("/contact", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), handler.GetContacts)
	website.Patch("/contact/:contactId/read", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.GetById("contactId"), handler.MarkContactRead)
	website.Post("/newsletter", validate.SubscribeNewsletter(), handler.SubscribeNewsletter)
	website.Get("/newsletter/unsubscribe", handler.UnsubscribeNewsletter)
	website.Get("/services", handler.GetServices)
	website.Post("/services", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.CreateService(), handler.CreateService)
	website.Get("/testimonials", handler.GetTestimonials)
	website.Post("/testimonials", validate.CreateTestimonial(), handler.CreateTestimonial)
	website.Patch("/testimonials/:testimonialId/approve", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), validate.GetById("testimonialId"), handler.ApproveTestimonial)

	v1.Post("/cloudinary-signature", middleware.RequireCapability(constants.CAN_MANAGE_CONTENT), handler.GetUploadSignature)
}
