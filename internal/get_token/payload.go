package get_token

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func GetPayloadToken(c echo.Context) PayloadDTO {
	strID, _ := c.Get("token_id").(uuid.UUID)
	strUsername, _ := c.Get("token_username").(string)
	strExpiredAt, _ := c.Get("token_expired_at").(time.Time)
	strToken, _ := c.Get("token_raw").(string)

	return PayloadDTO{
		ID:        strID,
		Username:  strUsername,
		ExpiredAt: strExpiredAt,
		Token:     strToken,
	}
}
