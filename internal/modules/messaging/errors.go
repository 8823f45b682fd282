package messaging

import "errors"

var ErrRecipientNotFound = errors.New("recipient not found")
