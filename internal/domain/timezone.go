package domain

import "time"

// GatewayTimezone фиксированный часовой пояс шлюза (UTC+7). В нем считаются
// даты-префиксы идентификаторов транзакций и сроки действия счетов — независимо
// от локального пояса машины, на которой крутится сервис.
var GatewayTimezone = time.FixedZone("GMT+07:00", 7*60*60)
