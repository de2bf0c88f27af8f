package mysql

// Filters use the (? = '' OR col = ?) form so each statement stays constant;
// callers pass every filter value twice.

// -----------------------------------------------------------------------------
// USERS
// -----------------------------------------------------------------------------

const listUsersSQL = `
SELECT id, username, password, name, email, phone_number, profile_picture
FROM users
WHERE (? = '' OR username = ?)
  AND (? = '' OR email = ?)
ORDER BY username, id`

const getUserSQL = `
SELECT id, username, password, name, email, phone_number, profile_picture
FROM users
WHERE id = ?`

const getUserByUsernameSQL = `
SELECT id, username, password, name, email, phone_number, profile_picture
FROM users
WHERE username = ?`

const insertUserSQL = `
INSERT INTO users (id, username, password, name, email, phone_number, profile_picture)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const updateUserSQL = `
UPDATE users
SET username = ?, password = ?, name = ?, email = ?, phone_number = ?, profile_picture = ?
WHERE id = ?`

const deleteUserSQL = `DELETE FROM users WHERE id = ?`

// -----------------------------------------------------------------------------
// HOSTS
// -----------------------------------------------------------------------------

const listHostsSQL = `
SELECT id, username, password, name, email, phone_number, profile_picture, about_me
FROM hosts
WHERE (? = '' OR name = ?)
ORDER BY name, id`

const getHostSQL = `
SELECT id, username, password, name, email, phone_number, profile_picture, about_me
FROM hosts
WHERE id = ?`

const insertHostSQL = `
INSERT INTO hosts (id, username, password, name, email, phone_number, profile_picture, about_me)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const updateHostSQL = `
UPDATE hosts
SET username = ?, password = ?, name = ?, email = ?, phone_number = ?, profile_picture = ?, about_me = ?
WHERE id = ?`

const deleteHostSQL = `DELETE FROM hosts WHERE id = ?`

// -----------------------------------------------------------------------------
// PROPERTIES
// -----------------------------------------------------------------------------

// Amenity ids are folded into one column; uuids never contain commas.
const selectPropertySQL = `
SELECT p.id, p.host_id, p.title, p.description, p.location, p.price_per_night,
       p.bedroom_count, p.bathroom_count, p.max_guest_count, p.rating,
       COALESCE(GROUP_CONCAT(pa.amenity_id ORDER BY pa.amenity_id SEPARATOR ','), '')
FROM properties p
LEFT JOIN property_amenities pa ON pa.property_id = p.id`

const listPropertiesSQL = selectPropertySQL + `
WHERE (? = '' OR p.location = ?)
  AND (? IS NULL OR p.price_per_night = ?)
  AND (? = '' OR EXISTS (
        SELECT 1 FROM property_amenities fa
        JOIN amenities a ON a.id = fa.amenity_id
        WHERE fa.property_id = p.id AND a.name = ?))
GROUP BY p.id
ORDER BY p.title, p.id`

const getPropertySQL = selectPropertySQL + `
WHERE p.id = ?
GROUP BY p.id`

const insertPropertySQL = `
INSERT INTO properties
  (id, host_id, title, description, location, price_per_night, bedroom_count, bathroom_count, max_guest_count, rating)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const updatePropertySQL = `
UPDATE properties
SET host_id = ?, title = ?, description = ?, location = ?, price_per_night = ?,
    bedroom_count = ?, bathroom_count = ?, max_guest_count = ?, rating = ?
WHERE id = ?`

const deletePropertySQL = `DELETE FROM properties WHERE id = ?`

const clearPropertyAmenitiesSQL = `DELETE FROM property_amenities WHERE property_id = ?`

// Rows are appended as "(?, ?)" groups.
const insertPropertyAmenitiesPrefix = "INSERT INTO property_amenities (property_id, amenity_id) VALUES "

// -----------------------------------------------------------------------------
// AMENITIES
// -----------------------------------------------------------------------------

const listAmenitiesSQL = `
SELECT id, name FROM amenities
WHERE (? = '' OR name = ?)
ORDER BY name, id`

const getAmenitySQL = `SELECT id, name FROM amenities WHERE id = ?`

const insertAmenitySQL = `INSERT INTO amenities (id, name) VALUES (?, ?)`

const updateAmenitySQL = `UPDATE amenities SET name = ? WHERE id = ?`

const deleteAmenitySQL = `DELETE FROM amenities WHERE id = ?`

// -----------------------------------------------------------------------------
// BOOKINGS
// -----------------------------------------------------------------------------

const listBookingsSQL = `
SELECT id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status
FROM bookings
WHERE (? = '' OR user_id = ?)
ORDER BY checkin_date, id`

const getBookingSQL = `
SELECT id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status
FROM bookings
WHERE id = ?`

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)`

const updateBookingSQL = `
UPDATE bookings
SET user_id = ?, property_id = ?, checkin_date = ?, checkout_date = ?,
    number_of_guests = ?, total_price = ?, booking_status = ?
WHERE id = ?`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = ?`

// -----------------------------------------------------------------------------
// REVIEWS
// -----------------------------------------------------------------------------

// Note: `comment` is a keyword; keep it quoted everywhere.
const listReviewsSQL = "\nSELECT id, user_id, property_id, rating, `comment`\nFROM reviews\n" +
	"WHERE (? = '' OR user_id = ?)\n  AND (? = '' OR property_id = ?)\nORDER BY id"

const getReviewSQL = "SELECT id, user_id, property_id, rating, `comment` FROM reviews WHERE id = ?"

const insertReviewSQL = "INSERT INTO reviews (id, user_id, property_id, rating, `comment`) VALUES (?, ?, ?, ?, ?)"

const updateReviewSQL = "UPDATE reviews SET user_id = ?, property_id = ?, rating = ?, `comment` = ? WHERE id = ?"

const deleteReviewSQL = `DELETE FROM reviews WHERE id = ?`
