package currency

type SetCurrencyReq struct {
	Code string `json:"code" validate:"required,len=3,alpha"`
}
