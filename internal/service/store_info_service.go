package service

// StoreStat 关于页统计
type StoreStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// StoreFeature 卖点
type StoreFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TeamMember 团队成员
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

// AboutContent 关于页内容
type AboutContent struct {
	Headline string         `json:"headline"`
	Intro    string         `json:"intro"`
	Stats    []StoreStat    `json:"stats"`
	Mission  []string       `json:"mission"`
	Features []StoreFeature `json:"features"`
	Team     []TeamMember   `json:"team"`
	Values   []StoreFeature `json:"values"`
	Contact  string         `json:"contact"`
}

// HeroContent 首页横幅
type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// StoreInfoService 静态店铺文案
type StoreInfoService struct{}

// NewStoreInfoService 创建店铺文案服务
func NewStoreInfoService() *StoreInfoService {
	return &StoreInfoService{}
}

// Hero 首页横幅
func (s *StoreInfoService) Hero() HeroContent {
	return HeroContent{
		Title:    "Discover Amazing Tech Products",
		Subtitle: "Find the latest gadgets, electronics, and accessories at unbeatable prices. Quality products with fast shipping and excellent customer service.",
		CTA:      "Shop Now",
	}
}

// About 关于页
func (s *StoreInfoService) About() AboutContent {
	return AboutContent{
		Headline: "Your Trusted Tech Partner",
		Intro:    "Since 2020, EverBuy has been dedicated to bringing you the latest and greatest in technology. We believe everyone deserves access to premium tech products at fair prices, backed by exceptional customer service.",
		Stats: []StoreStat{
			{Number: "50K+", Label: "Happy Customers"},
			{Number: "1000+", Label: "Products"},
			{Number: "99.9%", Label: "Uptime"},
			{Number: "24/7", Label: "Support"},
		},
		Mission: []string{
			"At EverBuy, we're passionate about making cutting-edge technology accessible to everyone. Our mission is to bridge the gap between innovation and affordability, ensuring that premium tech products are within reach for all consumers.",
			"We carefully curate our product selection, partnering with trusted manufacturers and emerging brands to offer you the best in electronics, accessories, and smart devices. Every product in our catalog is tested and verified to meet our high standards.",
			"Beyond just selling products, we're building a community of tech enthusiasts who share our passion for innovation and quality. We're here to guide you through your tech journey, from discovery to purchase to ongoing support.",
		},
		Features: []StoreFeature{
			{Title: "Quality Guarantee", Description: "All products come with manufacturer warranty and our quality assurance promise."},
			{Title: "Fast Shipping", Description: "Free shipping on orders over $100. Express delivery available nationwide."},
			{Title: "24/7 Support", Description: "Our customer service team is available around the clock to help you."},
			{Title: "Best Prices", Description: "Competitive pricing with regular sales and exclusive member discounts."},
		},
		Team: []TeamMember{
			{Name: "Sarah Johnson", Role: "CEO & Founder", Image: "/professional-woman-ceo.png", Bio: "Tech entrepreneur with 15+ years in e-commerce and consumer electronics."},
			{Name: "Michael Chen", Role: "CTO", Image: "/professional-man-cto.png", Bio: "Former Google engineer specializing in scalable e-commerce platforms."},
			{Name: "Emily Rodriguez", Role: "Head of Customer Success", Image: "/professional-woman-customer-success.jpg", Bio: "Customer experience expert ensuring every interaction exceeds expectations."},
		},
		Values: []StoreFeature{
			{Title: "Customer First", Description: "Every decision we make is guided by what's best for our customers and their experience."},
			{Title: "Innovation", Description: "We stay ahead of tech trends to bring you the most innovative products and solutions."},
			{Title: "Integrity", Description: "Honest pricing, transparent policies, and genuine care for our community."},
		},
		Contact: "Have questions about our products or services? We'd love to hear from you.",
	}
}
