package catalog

import "farmmarket/internal/domain"

// seedProducts returns the marketplace's fixed demo catalog: five
// products in each of the Grains, Vegetables, Fruits and Dairy
// categories.
func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Organic Wheat", Price: 40, Unit: "per kg", Rating: 4.5, Farmer: "John Doe", Location: "Punjab", ImageURL: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 500, DeliveryTime: "2-3 days", Discount: 10, Category: "Grains"},
		{ID: 2, Name: "Premium Basmati Rice", Price: 60, Unit: "per kg", Rating: 4.8, Farmer: "Jane Smith", Location: "West Bengal", ImageURL: "https://images.unsplash.com/photo-1586201375761-83865001e31c?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 750, DeliveryTime: "1-2 days", Discount: 5, Category: "Grains"},
		{ID: 3, Name: "Organic Quinoa", Price: 120, Unit: "per kg", Rating: 4.6, Farmer: "Rajesh Kumar", Location: "Uttarakhand", ImageURL: "https://images.unsplash.com/photo-1586662164783-9695d406d19f?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 300, DeliveryTime: "2-3 days", Discount: 0, Category: "Grains"},
		{ID: 13, Name: "Pearl Millet (Bajra)", Price: 35, Unit: "per kg", Rating: 4.4, Farmer: "Vikram Singh", Location: "Rajasthan", ImageURL: "https://images.unsplash.com/photo-1635321350281-e45ae2c7bae3?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 600, DeliveryTime: "2-3 days", Discount: 0, Category: "Grains"},
		{ID: 14, Name: "Organic Red Rice", Price: 85, Unit: "per kg", Rating: 4.7, Farmer: "Maya Reddy", Location: "Kerala", ImageURL: "https://images.unsplash.com/photo-1594312180721-3b5217cfc65f?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 200, DeliveryTime: "2-3 days", Discount: 8, Category: "Grains"},

		{ID: 4, Name: "Fresh Vegetable Pack", Price: 200, Unit: "per pack", Rating: 4.3, Farmer: "Mike Johnson", Location: "Karnataka", ImageURL: "https://images.unsplash.com/photo-1540420773420-3366772f4999?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 100, DeliveryTime: "1 day", Discount: 15, Category: "Vegetables"},
		{ID: 5, Name: "Organic Tomatoes", Price: 40, Unit: "per kg", Rating: 4.4, Farmer: "Priya Sharma", Location: "Maharashtra", ImageURL: "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 200, DeliveryTime: "1 day", Discount: 0, Category: "Vegetables"},
		{ID: 6, Name: "Fresh Spinach", Price: 30, Unit: "per bunch", Rating: 4.7, Farmer: "Amit Patel", Location: "Gujarat", ImageURL: "https://images.unsplash.com/photo-1576045057995-568f588f82fb?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 150, DeliveryTime: "1 day", Discount: 0, Category: "Vegetables"},
		{ID: 15, Name: "Baby Potatoes", Price: 45, Unit: "per kg", Rating: 4.6, Farmer: "Surinder Kaur", Location: "Punjab", ImageURL: "https://images.unsplash.com/photo-1518977676601-b53f82aba655?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 400, DeliveryTime: "1-2 days", Discount: 0, Category: "Vegetables"},
		{ID: 16, Name: "Organic Bell Peppers", Price: 80, Unit: "per kg", Rating: 4.5, Farmer: "Rahul Verma", Location: "Himachal Pradesh", ImageURL: "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 120, DeliveryTime: "1-2 days", Discount: 5, Category: "Vegetables"},

		{ID: 7, Name: "Seasonal Fruit Pack", Price: 250, Unit: "per pack", Rating: 4.6, Farmer: "Sarah Wilson", Location: "Maharashtra", ImageURL: "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 200, DeliveryTime: "1-2 days", Discount: 0, Category: "Fruits"},
		{ID: 8, Name: "Organic Mangoes", Price: 150, Unit: "per dozen", Rating: 4.9, Farmer: "Ramesh Yadav", Location: "Uttar Pradesh", ImageURL: "https://images.unsplash.com/photo-1553279768-865429fa0078?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 100, DeliveryTime: "1-2 days", Discount: 5, Category: "Fruits"},
		{ID: 9, Name: "Fresh Pomegranate", Price: 120, Unit: "per kg", Rating: 4.5, Farmer: "Meera Reddy", Location: "Karnataka", ImageURL: "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 300, DeliveryTime: "1-2 days", Discount: 0, Category: "Fruits"},
		{ID: 17, Name: "Sweet Oranges", Price: 90, Unit: "per kg", Rating: 4.7, Farmer: "Prakash Shetty", Location: "Nagpur", ImageURL: "https://images.unsplash.com/photo-1547514701-42782101795e?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 250, DeliveryTime: "1-2 days", Discount: 0, Category: "Fruits"},
		{ID: 18, Name: "Organic Strawberries", Price: 180, Unit: "per box", Rating: 4.8, Farmer: "Anjali Deshmukh", Location: "Maharashtra", ImageURL: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 80, DeliveryTime: "1 day", Discount: 0, Category: "Fruits"},

		{ID: 10, Name: "Organic Milk", Price: 60, Unit: "per liter", Rating: 4.8, Farmer: "Gurpreet Singh", Location: "Punjab", ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 100, DeliveryTime: "1 day", Discount: 0, Category: "Dairy"},
		{ID: 11, Name: "Farm Fresh Butter", Price: 200, Unit: "per 500g", Rating: 4.7, Farmer: "Anita Desai", Location: "Gujarat", ImageURL: "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 50, DeliveryTime: "1-2 days", Discount: 0, Category: "Dairy"},
		{ID: 12, Name: "Artisanal Cheese", Price: 300, Unit: "per 250g", Rating: 4.6, Farmer: "Thomas Jacob", Location: "Karnataka", ImageURL: "https://images.unsplash.com/photo-1634487359989-3e90c9432133?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 30, DeliveryTime: "2-3 days", Discount: 10, Category: "Dairy"},
		{ID: 19, Name: "Fresh Paneer", Price: 280, Unit: "per kg", Rating: 4.7, Farmer: "Kavita Sharma", Location: "Haryana", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?auto=format&fit=crop&q=80&w=400", Organic: false, Stock: 40, DeliveryTime: "1 day", Discount: 0, Category: "Dairy"},
		{ID: 20, Name: "Organic Yogurt", Price: 50, Unit: "per 400g", Rating: 4.8, Farmer: "Ravi Kumar", Location: "Tamil Nadu", ImageURL: "https://images.unsplash.com/photo-1571212515416-fca988684e60?auto=format&fit=crop&q=80&w=400", Organic: true, Stock: 150, DeliveryTime: "1 day", Discount: 5, Category: "Dairy"},
	}
}
