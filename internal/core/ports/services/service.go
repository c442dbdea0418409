package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Load        LoadSvcFacade
	Customer    CustomerSvcFacade
	Carrier     CarrierSvcFacade
	User        UserSvcFacade
	Receivable  ReceivableSvcFacade
	Payable     PayableSvcFacade
	History     HistorySvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
}
