package i18n

var tables = map[Language]map[string]string{
	Russian: {
		"nav_search": "Поиск", "nav_login": "Войти", "nav_logout": "Выйти",
		"hero_title": "Sirius Scholar",
		"hero_desc":  "Единая цифровая платформа: Рейтинги ученых, Гранты и AI-Поиск коллег.",
		"btn_find":   "🔍 Найти исследователя", "btn_join": "Создать профиль",
		"home_feed": "🔥 Лента публикаций", "home_stats": "Статистика платформы",
		"stat_users": "Ученых в базе", "stat_indexed": "Индексировано статей", "stat_monitor": "Мониторинг 24/7",
		"trend_title": "В тренде", "trend_sub": "Самое популярное за неделю",

		"login_title": "Вход в личный кабинет", "login_err": "Ошибка! Неверный email или пароль", "login_hint": "Demo: admin@sirius.ru / admin",
		"reg_title": "Регистрация", "reg_desc": "Введите фамилию. Система найдет ваши статьи.",
		"reg_btn": "Зарегистрироваться", "reg_wait": "Анализ базы данных...",

		"search_title": "База знаний", "search_ph": "Введите фамилию или научную область...",

		"profile_edit": "✏️ Редактировать", "profile_save": "Сохранить", "profile_cancel": "Отмена",
		"profile_contact": "✉️ Связаться", "profile_hide_contact": "🔼 Скрыть контакты",
		"profile_add_btn": "➕ Добавить статью", "profile_del_btn": "Удалить",

		"lbl_rating": "Научный Рейтинг", "lbl_hindex": "Индекс Хирша", "lbl_pubs": "Статей", "lbl_cits": "Цитирований",

		"rec_title": "💡 AI Рекомендации коллег", "rec_why": "Алгоритм ML подобрал для вас:",
		"art_title": "Список публикаций", "art_none": "Публикации не найдены",

		"lbl_email": "Email", "lbl_pass": "Пароль", "lbl_name": "Имя", "lbl_lname": "Фамилия",
		"lbl_city": "Город", "lbl_age": "Возраст", "lbl_status": "Статус / Роль", "lbl_is_admin": "Зарегистрировать как Администратора (Demo)",
		"lbl_art_title": "Название статьи", "lbl_art_url": "Ссылка", "lbl_art_cit": "Цитат",

		"st_student": "Студент", "st_phd": "Аспирант", "st_researcher": "Научный сотрудник", "st_prof": "Профессор",

		"back": "← Назад", "like_err": "Войдите в систему, чтобы ставить лайки",
		"lbl_cit_short": "Цит.", "lbl_auth": "Авторы:",
		"contact_phone": "Телефон:", "contact_email": "Почта:",

		"conn_err":      "Ошибка соединения с сервером",
		"reg_err":       "Ошибка регистрации (возможно, email занят)",
		"srv_err":       "Ошибка сервера",
		"like_sync_err": "Не удалось сохранить лайк, изменение отменено",
		"art_err":       "Не удалось добавить статью",
		"art_invalid":   "Укажите название и число цитирований",
		"forbidden":     "Недостаточно прав",
	},
	English: {
		"nav_search": "Search", "nav_login": "Login", "nav_logout": "Logout",
		"hero_title": "Sirius Scholar", "hero_desc": "Digital Ecosystem: Scientific Ratings, Grants, and Collaboration.",
		"btn_find": "🔍 Find Researcher", "btn_join": "Join Now",
		"home_feed": "🔥 Live Feed", "home_stats": "Platform Stats",
		"stat_users": "Researchers", "stat_indexed": "Indexed Articles", "stat_monitor": "24/7 Monitoring",
		"trend_title": "Trending Now", "trend_sub": "Most popular this week",

		"login_title": "System Login", "login_err": "Invalid credentials", "login_hint": "Demo: admin@sirius.ru / admin",
		"reg_title": "Registration", "reg_desc": "Enter last name. System will auto-detect papers.",
		"reg_btn": "Sign Up", "reg_wait": "Searching databases...",

		"search_title": "Knowledge Base", "search_ph": "Search by author or research area...",

		"profile_edit": "✏️ Edit", "profile_save": "Save", "profile_cancel": "Cancel",
		"profile_contact": "✉️ Contact", "profile_hide_contact": "🔼 Hide Contacts",
		"profile_add_btn": "➕ Add Article", "profile_del_btn": "Delete",

		"lbl_rating": "Sci-Score", "lbl_hindex": "H-Index", "lbl_pubs": "Papers", "lbl_cits": "Citations",

		"rec_title": "💡 AI Recommendations", "rec_why": "Based on your interests:",
		"art_title": "Publications List", "art_none": "No publications found",

		"lbl_email": "Email", "lbl_pass": "Password",
		"lbl_name": "First Name", "lbl_lname": "Last Name",
		"lbl_city": "City", "lbl_age": "Age", "lbl_status": "Academic Status", "lbl_is_admin": "Register as Administrator (Demo)",
		"lbl_art_title": "Article Title", "lbl_art_url": "Link", "lbl_art_cit": "Citations",

		"st_student": "Student", "st_phd": "PhD Student", "st_researcher": "Researcher", "st_prof": "Professor",

		"back": "← Back", "like_err": "Please login to like", "lbl_cit_short": "Cit.", "lbl_auth": "Authors:",
		"contact_phone": "Phone:", "contact_email": "Email:",

		"conn_err":      "Server connection error",
		"reg_err":       "Registration failed (the email may already be taken)",
		"srv_err":       "Server error",
		"like_sync_err": "Could not save the like, the change was reverted",
		"art_err":       "Could not add the article",
		"art_invalid":   "Title and a numeric citation count are required",
		"forbidden":     "Not allowed",
	},
}
