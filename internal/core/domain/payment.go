package domain

import "fmt"

type MobileMoneyOperator string

const (
	OperatorOrange   MobileMoneyOperator = "Orange Money"
	OperatorAirtel   MobileMoneyOperator = "Airtel Money"
	OperatorMPesa    MobileMoneyOperator = "M-Pesa"
	OperatorAfricell MobileMoneyOperator = "Africell"
)

var MobileMoneyOperators = []MobileMoneyOperator{
	OperatorOrange,
	OperatorAirtel,
	OperatorMPesa,
	OperatorAfricell,
}

const PhysicalPaymentInstructions = "Please go to the university cash desk with your matricule and an identity document."

// PaymentRequest is what a mobile-money action produces. Nothing is sent to
// the operator.
type PaymentRequest struct {
	Reference    string
	Operator     MobileMoneyOperator
	StudentEmail string
	Message      string
}

var SocialNetworks = []string{"facebook", "twitter", "instagram", "linkedin", "youtube", "whatsapp"}

const socialAccount = "UCC_Officiel"

type SocialLink struct {
	Network string
	URL     string
}

func SocialLinks() []SocialLink {
	links := make([]SocialLink, 0, len(SocialNetworks))
	for _, n := range SocialNetworks {
		links = append(links, SocialLink{
			Network: n,
			URL:     fmt.Sprintf("https://www.%s.com/%s", n, socialAccount),
		})
	}
	return links
}
