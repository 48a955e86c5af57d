package paychangu

// API paths relative to the base URL. Paths ending in "/" take a
// transaction reference suffix.
const (
	pathPayment             = "payment"
	pathVerifyPayment       = "verify-payment/"
	pathVirtualCardCreate   = "virtual_card/create"
	pathVirtualCardFund     = "virtual_card/fund"
	pathVirtualCardWithdraw = "virtual_card/withdraw"
	pathAirtimeOperators    = "bill_payment/get-operators"
	pathAirtimeCreate       = "bill_payment/create"
	pathMobileMoneyCharge   = "mobilemoney"
	pathBankTransferCharge  = "bank-transfer"
	pathChargeDetails       = "get-single-charge-details/"
	pathPayoutMobileMoney   = "disbursements/mobile-money"
	pathPayoutBank          = "disbursements/bank"
	pathPayoutOperators     = "disbursements/get-operators"
	pathPayoutBanks         = "disbursements/banks"
)
