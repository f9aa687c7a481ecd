package recommender

import "errors"

// ErrUserNotFound indica que el usuario pedido no existe en el snapshot.
// Los handlers lo mapean a 404; se detecta con errors.Is.
var ErrUserNotFound = errors.New("user not found")
