package services

import "skilz-store/internal/models"

// defaultCatalog is the Skilz Store product set. Ten records, compiled in;
// this is the only persisted-looking artifact in the whole system.
var defaultCatalog = []models.Product{
	{
		ID:          1,
		Name:        "هودي أزرق فاتح - Skilz Store",
		Description: "هودي عصري باللون الأزرق الفاتح مع تصميم أنيق وخامة عالية الجودة. مثالي للإطلالات الكاجوال اليومية.",
		Price:       450,
		OldPrice:    550,
		Images:      []string{"/files_4725149-1750797314656-image.png"},
		Category:    "hoodies",
		Rating:      4.8,
		StockCount:  15,
		Features: []string{
			"خامة قطنية عالية الجودة",
			"تصميم عصري ومريح",
			"متوفر بمقاسات مختلفة",
			"مناسب للفصول الباردة",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن مخلوط",
			"اللون":            "أزرق فاتح",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          2,
		Name:        "هودي أسود كلاسيكي - Skilz Store",
		Description: "هودي أسود أنيق بتصميم كلاسيكي مع شعار العلامة التجارية. قطعة أساسية في خزانة كل شخص عصري.",
		Price:       420,
		OldPrice:    500,
		Images:      []string{"/files_4725149-1750797344849-image.png"},
		Category:    "hoodies",
		Rating:      4.9,
		StockCount:  20,
		Features: []string{
			"لون أسود كلاسيكي",
			"تصميم بسيط وأنيق",
			"خامة مريحة ودافئة",
			"شعار العلامة التجارية",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن مخلوط",
			"اللون":            "أسود",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          3,
		Name:        "هودي أسود مع طباعة خلفية - Skilz Store",
		Description: "هودي أسود مميز مع طباعة فنية على الظهر ونص إنجليزي. تصميم فريد يجمع بين الأناقة والتميز.",
		Price:       480,
		OldPrice:    580,
		Images:      []string{"/files_4725149-1750797358216-image.png"},
		Category:    "hoodies",
		Rating:      4.7,
		StockCount:  12,
		Features: []string{
			"طباعة فنية مميزة على الظهر",
			"تصميم فريد وعصري",
			"خامة عالية الجودة",
			"مناسب للشباب العصري",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن مخلوط",
			"اللون":            "أسود مع طباعة",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          4,
		Name:        "هودي أسود مع تصميم النار - Skilz Store",
		Description: "هودي أسود بتصميم النار الأبيض المميز. قطعة جريئة وعصرية تناسب محبي التصاميم المختلفة.",
		Price:       500,
		OldPrice:    600,
		Images:      []string{"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "hoodies",
		Rating:      4.6,
		StockCount:  8,
		Features: []string{
			"تصميم النار المميز",
			"طباعة عالية الجودة",
			"خامة مريحة ودافئة",
			"تصميم جريء وعصري",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن مخلوط",
			"اللون":            "أسود مع طباعة بيضاء",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          5,
		Name:        "طقم رياضي أسود - Skilz Store",
		Description: "طقم رياضي أنيق باللون الأسود يتكون من سويت شيرت وبنطلون رياضي. مثالي للرياضة والإطلالات الكاجوال.",
		Price:       650,
		OldPrice:    750,
		Images:      []string{"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "sets",
		Rating:      4.8,
		StockCount:  10,
		Features: []string{
			"طقم كامل (توب + بنطلون)",
			"خامة رياضية مريحة",
			"تصميم عصري وأنيق",
			"مناسب للرياضة والكاجوال",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن رياضي",
			"اللون":            "أسود",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          6,
		Name:        "تيشيرت أسود بسيط - Skilz Store",
		Description: "تيشيرت أسود بسيط وأنيق، قطعة أساسية في خزانة الملابس. خامة قطنية مريحة ومناسبة لجميع المناسبات.",
		Price:       180,
		Images:      []string{"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "tshirts",
		Rating:      4.5,
		StockCount:  25,
		Features: []string{
			"تصميم بسيط وكلاسيكي",
			"خامة قطنية 100%",
			"مريح للارتداء اليومي",
			"سهل التنسيق",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن 100%",
			"اللون":            "أسود",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          7,
		Name:        "جينز أسود سليم فيت - Skilz Store",
		Description: "بنطلون جينز أسود بقصة سليم فيت عصرية. خامة دنيم عالية الجودة مع تصميم مريح وأنيق.",
		Price:       320,
		OldPrice:    400,
		Images:      []string{"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "pants",
		Rating:      4.7,
		StockCount:  18,
		Features: []string{
			"قصة سليم فيت عصرية",
			"خامة دنيم عالية الجودة",
			"لون أسود كلاسيكي",
			"مريح ومرن",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "دنيم مخلوط",
			"اللون":            "أسود",
			"المقاس":           "32",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          8,
		Name:        "جاكيت جينز أزرق - Skilz Store",
		Description: "جاكيت جينز كلاسيكي باللون الأزرق. قطعة خالدة تناسب جميع الفصول وتضيف لمسة عصرية لأي إطلالة.",
		Price:       380,
		Images:      []string{"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "jackets",
		Rating:      4.6,
		StockCount:  14,
		Features: []string{
			"تصميم كلاسيكي خالد",
			"خامة دنيم متينة",
			"مناسب لجميع الفصول",
			"سهل التنسيق",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "دنيم 100%",
			"اللون":            "أزرق",
			"المقاس":           "متوسط",
			"العناية":          "غسيل آلي",
		},
	},
	{
		ID:          9,
		Name:        "كاب أسود - Skilz Store",
		Description: "كاب أسود أنيق مع شعار العلامة التجارية. إكسسوار مثالي لإكمال الإطلالة العصرية.",
		Price:       120,
		Images:      []string{"https://images.pexels.com/photos/1124465/pexels-photo-1124465.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "accessories",
		Rating:      4.4,
		StockCount:  30,
		Features: []string{
			"تصميم بسيط وأنيق",
			"خامة عالية الجودة",
			"قابل للتعديل",
			"مناسب لجميع الأعمار",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "قطن مخلوط",
			"اللون":            "أسود",
			"المقاس":           "قابل للتعديل",
			"العناية":          "غسيل يدوي",
		},
	},
	{
		ID:          10,
		Name:        "حقيبة ظهر سوداء - Skilz Store",
		Description: "حقيبة ظهر عملية وأنيقة باللون الأسود. مثالية للجامعة، العمل، أو الاستخدام اليومي.",
		Price:       280,
		OldPrice:    350,
		Images:      []string{"https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		Category:    "accessories",
		Rating:      4.7,
		StockCount:  12,
		Features: []string{
			"تصميم عملي ومريح",
			"عدة جيوب للتنظيم",
			"خامة متينة ومقاومة للماء",
			"مناسبة للاستخدام اليومي",
		},
		Specifications: map[string]string{
			"العلامة التجارية": "Skilz Store",
			"المادة":           "نايلون مقاوم للماء",
			"اللون":            "أسود",
			"السعة":            "25 لتر",
			"العناية":          "تنظيف بقطعة قماش مبللة",
		},
	},
}
