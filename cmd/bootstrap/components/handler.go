package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	users *api.UserHandler,
	items *api.ItemHandler,
	bookings *api.BookingHandler,
	requests *api.ItemRequestHandler,
) handler.Handlers {
	return handler.Handlers{Users: users, Items: items, Bookings: bookings, Requests: requests}
}
